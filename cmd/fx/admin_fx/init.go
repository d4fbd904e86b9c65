package admin_fx

import (
	"go.uber.org/fx"

	"credimatch/internal/api/controllers"
	"credimatch/internal/repositories"
	"credimatch/internal/services"
)

var Module = fx.Provide(provideAdminService, provideAdminController)

func provideAdminService(
	adminRepo repositories.AdminRepository,
	questionRepo repositories.QuestionRepository,
) services.AdminServiceInterface {
	return services.NewAdminService(adminRepo, questionRepo)
}

func provideAdminController(adminService services.AdminServiceInterface) *controllers.AdminController {
	return controllers.NewAdminController(adminService)
}
