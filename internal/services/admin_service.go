package services

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"credimatch/internal/models/response_models"
	"credimatch/internal/repositories"
	"credimatch/pkg/utils"
)

type AdminServiceInterface interface {
	Login(ctx context.Context, email, password string) (string, error)
	UpdateResultsCount(ctx context.Context, quizID string, count int) (*response_models.QuizConfigResponse, error)
}

type AdminService struct {
	adminRepo    repositories.AdminRepository
	questionRepo repositories.QuestionRepository
}

func NewAdminService(
	adminRepo repositories.AdminRepository,
	questionRepo repositories.QuestionRepository,
) AdminServiceInterface {
	return &AdminService{
		adminRepo:    adminRepo,
		questionRepo: questionRepo,
	}
}

func (s *AdminService) Login(ctx context.Context, email, password string) (string, error) {
	account, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		log.Printf("Error fetching admin account: %v", err)
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrInvalidCredential
	}
	if err := utils.ComparePasswords(account.PasswordHash, password); err != nil {
		return "", utils.ErrInvalidCredential
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		log.Printf("Error issuing token: %v", err)
		return "", err
	}
	return token, nil
}

func (s *AdminService) UpdateResultsCount(ctx context.Context, quizID string, count int) (*response_models.QuizConfigResponse, error) {
	if count < 1 {
		return nil, utils.ErrInvalidInput
	}

	if err := s.questionRepo.UpdateResultsCount(ctx, quizID, count); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrConfigNotFound
		}
		log.Printf("Error updating results count: %v", err)
		return nil, utils.ErrDatabaseError
	}

	config, err := s.questionRepo.GetConfigByID(ctx, quizID)
	if err != nil {
		log.Printf("Error reloading quiz config: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if config == nil {
		return nil, utils.ErrConfigNotFound
	}

	return &response_models.QuizConfigResponse{
		ID:           config.ID.String(),
		LandingID:    config.LandingID,
		Title:        config.Title,
		ResultsCount: config.ResultsCount,
		Active:       config.Active,
	}, nil
}
