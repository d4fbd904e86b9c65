package services

import (
	"context"
	"log"

	"credimatch/internal/quiz"
	"credimatch/internal/repositories"
	"credimatch/pkg/utils"
)

// QuizDefinition is a loaded, validated quiz ready for a session.
type QuizDefinition struct {
	QuizID       string
	Title        string
	ResultsCount int
	Questions    []quiz.Question
}

type QuestionServiceInterface interface {
	// LoadQuizForLanding returns the quiz configured for a landing page.
	// (nil, nil) means no quiz is configured there, which is a normal state
	// and must not surface as an error.
	LoadQuizForLanding(ctx context.Context, landingID string) (*QuizDefinition, error)
}

type QuestionService struct {
	questionRepo repositories.QuestionRepository
}

func NewQuestionService(questionRepo repositories.QuestionRepository) QuestionServiceInterface {
	return &QuestionService{questionRepo: questionRepo}
}

func (s *QuestionService) LoadQuizForLanding(ctx context.Context, landingID string) (*QuizDefinition, error) {
	config, err := s.questionRepo.GetActiveConfigByLanding(ctx, landingID)
	if err != nil {
		log.Printf("Error loading quiz for landing %s: %v", landingID, err)
		return nil, utils.ErrQuizLoadFailed
	}
	if config == nil || len(config.Questions) == 0 {
		return nil, nil
	}

	questions := make([]quiz.Question, 0, len(config.Questions))
	for _, q := range config.Questions {
		mapped, err := mapQuestion(q)
		if err != nil {
			log.Printf("Error mapping quiz %s: %v", config.ID, err)
			return nil, utils.ErrQuizLoadFailed
		}
		questions = append(questions, mapped)
	}

	resultsCount := config.ResultsCount
	if resultsCount <= 0 {
		resultsCount = 5
	}

	return &QuizDefinition{
		QuizID:       config.ID.String(),
		Title:        config.Title,
		ResultsCount: resultsCount,
		Questions:    questions,
	}, nil
}
