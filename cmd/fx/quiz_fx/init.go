package quiz_fx

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/fx"

	"credimatch/internal/api/controllers"
	"credimatch/internal/repositories"
	"credimatch/internal/services"
	mem "credimatch/pkg/memcache"
)

var Module = fx.Provide(
	provideSessionStore,
	provideQuestionService,
	provideRecommendService,
	provideQuizService,
	provideQuizController,
)

func provideSessionStore() mem.SessionStore {
	ttl := 30 * time.Minute
	if raw := os.Getenv("QUIZ_SESSION_TTL_MINUTES"); raw != "" {
		if minutes, err := strconv.Atoi(raw); err == nil && minutes > 0 {
			ttl = time.Duration(minutes) * time.Minute
		}
	}
	return mem.NewSessions(ttl)
}

func provideQuestionService(questionRepo repositories.QuestionRepository) services.QuestionServiceInterface {
	return services.NewQuestionService(questionRepo)
}

func provideRecommendService(
	scoringClient services.ScoringClient,
	productRepo repositories.ProductRepository,
	analytics services.AnalyticsSink,
) services.RecommendServiceInterface {
	return services.NewRecommendService(scoringClient, productRepo, analytics)
}

func provideQuizService(
	questionService services.QuestionServiceInterface,
	recommender services.RecommendServiceInterface,
	sessions mem.SessionStore,
) services.QuizServiceInterface {
	return services.NewQuizService(questionService, recommender, sessions)
}

func provideQuizController(quizService services.QuizServiceInterface) *controllers.QuizController {
	return controllers.NewQuizController(quizService)
}
