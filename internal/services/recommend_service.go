package services

import (
	"context"
	"log"
	"sort"
	"time"

	"credimatch/internal/quiz"
	"credimatch/internal/repositories"
)

// remoteScoringWait bounds how long a finished quiz waits on the remote
// scoring service before falling back to local scoring.
const remoteScoringWait = 3 * time.Second

type RecommendServiceInterface interface {
	// Recommend produces the ranked recommendation list for a completed
	// session. It never fails: any remote problem degrades to the local
	// deterministic generator, so the quiz always has a result to show.
	Recommend(ctx context.Context, sess *quiz.Session) []quiz.ScoredProduct
}

type RecommendService struct {
	scoringClient ScoringClient
	productRepo   repositories.ProductRepository
	analytics     AnalyticsSink
}

func NewRecommendService(
	scoringClient ScoringClient,
	productRepo repositories.ProductRepository,
	analytics AnalyticsSink,
) RecommendServiceInterface {
	return &RecommendService{
		scoringClient: scoringClient,
		productRepo:   productRepo,
		analytics:     analytics,
	}
}

func (r *RecommendService) Recommend(ctx context.Context, sess *quiz.Session) []quiz.ScoredProduct {
	results := r.remoteResults(ctx, sess)
	if len(results) == 0 {
		results = r.localResults(ctx, sess)
	}

	if len(results) > 0 {
		r.analytics.Submit(AnalyticsRecord{
			QuizID:               sess.QuizID,
			LandingID:            sess.LandingID,
			SessionID:            sess.ID,
			Answers:              NewScoringRequest(sess).Answers,
			RecommendedProductID: results[0].Product.ID,
			MatchScore:           results[0].Score,
			Context:              "quiz",
		})
	}

	return results
}

// remoteResults asks the scoring service and maps its ranked ids onto known
// products. Returns nil on any failure, empty response, or when no returned
// id resolves to a product.
func (r *RecommendService) remoteResults(ctx context.Context, sess *quiz.Session) []quiz.ScoredProduct {
	scoreCtx, cancel := context.WithTimeout(ctx, remoteScoringWait)
	defer cancel()

	candidates, err := r.scoringClient.Score(scoreCtx, NewScoringRequest(sess))
	if err != nil {
		log.Printf("Remote scoring unavailable, using local generator: %v", err)
		return nil
	}
	if len(candidates) == 0 {
		return nil
	}

	index := r.productIndex(ctx)

	results := make([]quiz.ScoredProduct, 0, len(candidates))
	for _, c := range candidates {
		prod, ok := index[c.ProductID]
		if !ok {
			// Unknown id from the remote side; skip rather than fail.
			continue
		}
		results = append(results, quiz.ScoredProduct{
			Product: prod,
			Score:   clampScore(c.MatchScore),
			Reasons: c.Reasons,
		})
	}
	// Re-apply the ranking policy before truncating: score descending,
	// cheaper first among equals, regardless of the remote ordering.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Product.Price < results[j].Product.Price
	})
	if len(results) > sess.ResultsCount {
		results = results[:sess.ResultsCount]
	}
	return results
}

// localResults is the deterministic fallback: the in-process scoring
// function ranked over the local product list. Same answers, same output.
func (r *RecommendService) localResults(ctx context.Context, sess *quiz.Session) []quiz.ScoredProduct {
	return quiz.Rank(sess.Profile(), r.localProducts(ctx), sess.ResultsCount)
}

// localProducts prefers the catalog from storage and falls back to the
// built-in list when storage is unreachable too.
func (r *RecommendService) localProducts(ctx context.Context) []quiz.Product {
	stored, err := r.productRepo.ListAll(ctx)
	if err != nil || len(stored) == 0 {
		if err != nil {
			log.Printf("Error listing products for local scoring: %v", err)
		}
		return quiz.FallbackCatalog()
	}
	products := make([]quiz.Product, 0, len(stored))
	for _, p := range stored {
		products = append(products, mapProduct(p))
	}
	return products
}

func (r *RecommendService) productIndex(ctx context.Context) map[string]quiz.Product {
	index := make(map[string]quiz.Product)
	for _, p := range r.localProducts(ctx) {
		index[p.ID] = p
	}
	return index
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
