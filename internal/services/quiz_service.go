package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"credimatch/internal/models/response_models"
	"credimatch/internal/quiz"
	mem "credimatch/pkg/memcache"
	"credimatch/pkg/utils"
)

type QuizServiceInterface interface {
	// Start opens a quiz session for a landing. Returns (nil, nil) when the
	// landing has no quiz configured; the modal simply does not open.
	Start(ctx context.Context, landingID string) (*response_models.QuizStateResponse, error)
	Get(sessionID string) (*response_models.QuizStateResponse, error)
	Answer(sessionID string, optionIDs []string) (*response_models.QuizStateResponse, error)
	Back(sessionID string) (*response_models.QuizStateResponse, error)
	Restart(sessionID string) (*response_models.QuizStateResponse, error)
	Complete(ctx context.Context, sessionID string) (*response_models.QuizResultsResponse, error)
	Choose(sessionID string, productID string) (*response_models.WizardSeed, error)
	Browse(sessionID string) (*response_models.BrowseResponse, error)
	Cancel(sessionID string)
}

type QuizService struct {
	questionService QuestionServiceInterface
	recommender     RecommendServiceInterface
	sessions        mem.SessionStore
}

func NewQuizService(
	questionService QuestionServiceInterface,
	recommender RecommendServiceInterface,
	sessions mem.SessionStore,
) QuizServiceInterface {
	return &QuizService{
		questionService: questionService,
		recommender:     recommender,
		sessions:        sessions,
	}
}

func (s *QuizService) Start(ctx context.Context, landingID string) (*response_models.QuizStateResponse, error) {
	def, err := s.questionService.LoadQuizForLanding(ctx, landingID)
	if err != nil {
		return nil, err
	}
	if def == nil {
		return nil, nil
	}

	sess, err := quiz.NewSession(uuid.New().String(), def.QuizID, landingID, def.Questions, def.ResultsCount)
	if err != nil {
		log.Printf("Error creating quiz session: %v", err)
		return nil, utils.ErrQuizLoadFailed
	}
	s.sessions.Put(sess)

	return stateResponse(sess), nil
}

func (s *QuizService) Get(sessionID string) (*response_models.QuizStateResponse, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	return stateResponse(sess), nil
}

func (s *QuizService) Answer(sessionID string, optionIDs []string) (*response_models.QuizStateResponse, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	if err := sess.Answer(optionIDs); err != nil {
		return nil, err
	}
	return stateResponse(sess), nil
}

func (s *QuizService) Back(sessionID string) (*response_models.QuizStateResponse, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	if err := sess.Back(); err != nil {
		return nil, err
	}
	return stateResponse(sess), nil
}

func (s *QuizService) Restart(sessionID string) (*response_models.QuizStateResponse, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	sess.Restart()
	return stateResponse(sess), nil
}

func (s *QuizService) Complete(ctx context.Context, sessionID string) (*response_models.QuizResultsResponse, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	if err := sess.BeginCalculating(); err != nil {
		return nil, err
	}

	results := s.recommender.Recommend(ctx, sess)
	sess.SetResults(results)

	return &response_models.QuizResultsResponse{
		SessionID: sess.ID,
		State:     sess.State().String(),
		Results:   productMatches(results),
	}, nil
}

func (s *QuizService) Choose(sessionID string, productID string) (*response_models.WizardSeed, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	chosen, err := sess.Choose(productID)
	if err != nil {
		return nil, err
	}
	s.sessions.Delete(sessionID)

	return &response_models.WizardSeed{
		ProductID:    chosen.Product.ID,
		Name:         chosen.Product.Name,
		Brand:        chosen.Product.Brand,
		Price:        chosen.Product.Price,
		MonthlyQuota: chosen.Product.MonthlyQuota,
		Processor:    chosen.Product.Processor,
		RAMGB:        chosen.Product.RAMGB,
		StorageGB:    chosen.Product.StorageGB,
		GPUClass:     string(chosen.Product.GPU),
	}, nil
}

func (s *QuizService) Browse(sessionID string) (*response_models.BrowseResponse, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	results, filters, err := sess.Browse()
	if err != nil {
		return nil, err
	}
	s.sessions.Delete(sessionID)

	return &response_models.BrowseResponse{
		SessionID: sess.ID,
		Results:   productMatches(results),
		Filters:   filters,
	}, nil
}

func (s *QuizService) Cancel(sessionID string) {
	if sess, ok := s.sessions.Get(sessionID); ok {
		sess.Cancel()
	}
	s.sessions.Delete(sessionID)
}

func stateResponse(sess *quiz.Session) *response_models.QuizStateResponse {
	resp := &response_models.QuizStateResponse{
		SessionID:  sess.ID,
		State:      sess.State().String(),
		StepIndex:  sess.StepIndex(),
		TotalSteps: sess.TotalSteps(),
	}
	if sess.State() == quiz.StateQuestion {
		resp.Question = questionView(sess.Current())
		resp.SelectedOptionIDs = sess.Selected()
	}
	return resp
}
