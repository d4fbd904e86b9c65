package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"credimatch/internal/quiz"
)

// ScoringRequest carries the raw answers, not the derived profile: the
// remote service applies its own scoring and may use richer signals.
type ScoringRequest struct {
	QuizID       string          `json:"quiz_id"`
	LandingID    string          `json:"landing_id"`
	ResultsCount int             `json:"results_count"`
	Answers      []AnswerPayload `json:"answers"`
	Questions    []QuestionRef   `json:"questions"`
}

type AnswerPayload struct {
	QuestionID string   `json:"question_id"`
	OptionIDs  []string `json:"option_ids"`
}

type QuestionRef struct {
	ID        string   `json:"id"`
	OptionIDs []string `json:"option_ids"`
}

// ScoredCandidate is one ranked product id returned by the scoring service.
type ScoredCandidate struct {
	ProductID  string   `json:"product_id"`
	MatchScore int      `json:"match_score"`
	Reasons    []string `json:"reasons"`
}

type ScoringClient interface {
	Score(ctx context.Context, req ScoringRequest) ([]ScoredCandidate, error)
}

type scoringResponse struct {
	Products []ScoredCandidate `json:"products"`
}

// HTTPScoringClient talks to the external scoring service with a bounded
// wait. A circuit breaker stops hammering the service once it starts
// failing; an open breaker surfaces as an error and the caller falls back
// to local scoring.
type HTTPScoringClient struct {
	httpClient *http.Client
	baseURL    string
	breaker    *gobreaker.CircuitBreaker[[]ScoredCandidate]
}

func NewHTTPScoringClient() *HTTPScoringClient {
	baseURL := os.Getenv("SCORING_URL")

	settings := gobreaker.Settings{
		Name:    "scoring-service",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	}

	return &HTTPScoringClient{
		httpClient: &http.Client{Timeout: 3 * time.Second},
		baseURL:    baseURL,
		breaker:    gobreaker.NewCircuitBreaker[[]ScoredCandidate](settings),
	}
}

func (c *HTTPScoringClient) Score(ctx context.Context, req ScoringRequest) ([]ScoredCandidate, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("scoring service not configured")
	}

	return c.breaker.Execute(func() ([]ScoredCandidate, error) {
		body, err := json.Marshal(req)
		if err != nil {
			return nil, err
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/score", bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		httpReq.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(httpReq)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("scoring service returned status %d", resp.StatusCode)
		}

		var decoded scoringResponse
		if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
			return nil, fmt.Errorf("malformed scoring response: %w", err)
		}
		return decoded.Products, nil
	})
}

// NewScoringRequest assembles the remote payload from a session.
func NewScoringRequest(sess *quiz.Session) ScoringRequest {
	answers := make([]AnswerPayload, 0, len(sess.History()))
	for _, a := range sess.History() {
		answers = append(answers, AnswerPayload{QuestionID: a.QuestionID, OptionIDs: a.OptionIDs})
	}

	questions := make([]QuestionRef, 0, len(sess.Questions))
	for _, q := range sess.Questions {
		ref := QuestionRef{ID: q.ID}
		for _, o := range q.Options {
			ref.OptionIDs = append(ref.OptionIDs, o.ID)
		}
		questions = append(questions, ref)
	}

	return ScoringRequest{
		QuizID:       sess.QuizID,
		LandingID:    sess.LandingID,
		ResultsCount: sess.ResultsCount,
		Answers:      answers,
		Questions:    questions,
	}
}
