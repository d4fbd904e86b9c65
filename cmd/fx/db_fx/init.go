package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"credimatch/internal/infra"
	"credimatch/internal/repositories"
)

var Module = fx.Provide(
	provideDB,
	provideQuestionRepo,
	provideProductRepo,
	provideAdminRepo,
)

func provideDB() *gorm.DB {
	return infra.InitPostgresql()
}

func provideQuestionRepo(db *gorm.DB) repositories.QuestionRepository {
	return repositories.NewQuestionRepository(db)
}

func provideProductRepo(db *gorm.DB) repositories.ProductRepository {
	return repositories.NewProductRepository(db)
}

func provideAdminRepo(db *gorm.DB) repositories.AdminRepository {
	return repositories.NewAdminRepository(db)
}
