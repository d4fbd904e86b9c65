package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"credimatch/internal/models/db_models"
)

type QuestionRepository interface {
	// GetActiveConfigByLanding loads the active quiz for a landing with its
	// questions and options in display order. Returns (nil, nil) when the
	// landing has no active quiz; that is not an error.
	GetActiveConfigByLanding(ctx context.Context, landingID string) (*db_models.QuizConfig, error)
	GetConfigByID(ctx context.Context, id string) (*db_models.QuizConfig, error)
	UpdateResultsCount(ctx context.Context, id string, count int) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) GetActiveConfigByLanding(ctx context.Context, landingID string) (*db_models.QuizConfig, error) {
	var config db_models.QuizConfig
	err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&config, "landing_id = ? AND active = ?", landingID, true).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &config, nil
}

func (r *questionRepository) GetConfigByID(ctx context.Context, id string) (*db_models.QuizConfig, error) {
	var config db_models.QuizConfig
	err := r.db.WithContext(ctx).First(&config, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &config, nil
}

func (r *questionRepository) UpdateResultsCount(ctx context.Context, id string, count int) error {
	result := r.db.WithContext(ctx).
		Model(&db_models.QuizConfig{}).
		Where("id = ?", id).
		Update("results_count", count)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
