package catalog_fx

import (
	"go.uber.org/fx"

	"credimatch/internal/api/controllers"
	"credimatch/internal/repositories"
	"credimatch/internal/services"
)

var Module = fx.Provide(provideCatalogService, provideCatalogController)

func provideCatalogService(productRepo repositories.ProductRepository) services.CatalogServiceInterface {
	return services.NewCatalogService(productRepo)
}

func provideCatalogController(catalogService services.CatalogServiceInterface) *controllers.CatalogController {
	return controllers.NewCatalogController(catalogService)
}
