package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"
)

// AnalyticsRecord captures which product a finished quiz recommended.
type AnalyticsRecord struct {
	QuizID               string          `json:"quiz_id"`
	LandingID            string          `json:"landing_id"`
	SessionID            string          `json:"session_id"`
	Answers              []AnswerPayload `json:"answers"`
	RecommendedProductID string          `json:"recommended_product_id"`
	MatchScore           int             `json:"match_score"`
	Context              string          `json:"context"`
}

// AnalyticsSink submits records best-effort. Submit never blocks the caller
// and never returns an error: analytics failures must not touch the quiz
// flow in any way.
type AnalyticsSink interface {
	Submit(record AnalyticsRecord)
}

type httpAnalyticsSink struct {
	httpClient *http.Client
	baseURL    string
}

func NewHTTPAnalyticsSink() AnalyticsSink {
	return &httpAnalyticsSink{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    os.Getenv("ANALYTICS_URL"),
	}
}

func (s *httpAnalyticsSink) Submit(record AnalyticsRecord) {
	if s.baseURL == "" {
		return
	}

	// Detached: the quiz result is already on its way to the user.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		body, err := json.Marshal(record)
		if err != nil {
			log.Printf("Error encoding analytics record: %v", err)
			return
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/events", bytes.NewReader(body))
		if err != nil {
			log.Printf("Error building analytics request: %v", err)
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.httpClient.Do(req)
		if err != nil {
			log.Printf("Error submitting analytics event: %v", err)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 300 {
			log.Printf("Analytics sink returned status %d", resp.StatusCode)
		}
	}()
}

// NopAnalyticsSink discards every record. Used when no sink is configured
// and in tests.
type NopAnalyticsSink struct{}

func (NopAnalyticsSink) Submit(AnalyticsRecord) {}
