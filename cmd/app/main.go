package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"credimatch/cmd/fx/admin_fx"
	"credimatch/cmd/fx/analytics_fx"
	"credimatch/cmd/fx/catalog_fx"
	"credimatch/cmd/fx/db_fx"
	"credimatch/cmd/fx/quiz_fx"
	"credimatch/cmd/fx/scoring_fx"
	"credimatch/internal/api/controllers"
	"credimatch/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	app := fx.New(
		db_fx.Module,
		scoring_fx.Module,
		analytics_fx.Module,
		quiz_fx.Module,
		catalog_fx.Module,
		admin_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	quizController *controllers.QuizController,
	catalogController *controllers.CatalogController,
	adminController *controllers.AdminController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, quizController, catalogController, adminController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	quizController *controllers.QuizController,
	catalogController *controllers.CatalogController,
	adminController *controllers.AdminController) {

	quizGroup := r.Group("/quiz")
	quizGroup.POST("/session", quizController.StartSession)
	quizGroup.GET("/session/:sessionId", quizController.GetSession)
	quizGroup.POST("/session/:sessionId/answer", quizController.Answer)
	quizGroup.POST("/session/:sessionId/back", quizController.Back)
	quizGroup.POST("/session/:sessionId/restart", quizController.Restart)
	quizGroup.POST("/session/:sessionId/complete", quizController.Complete)
	quizGroup.POST("/session/:sessionId/choose", quizController.Choose)
	quizGroup.POST("/session/:sessionId/browse", quizController.Browse)
	quizGroup.DELETE("/session/:sessionId", quizController.Cancel)

	catalogGroup := r.Group("/catalog")
	catalogGroup.GET("", catalogController.ListProducts)

	adminGroup := r.Group("/admin")
	adminGroup.POST("/login", adminController.Login)

	adminQuiz := adminGroup.Group("/quiz")
	adminQuiz.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	adminQuiz.PUT("/:quizId/results-count", adminController.UpdateResultsCount)
}
