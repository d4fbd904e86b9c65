package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"credimatch/internal/models/request_models"
	"credimatch/internal/services"
	"credimatch/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

func (cc *CatalogController) ListProducts(c *gin.Context) {
	var query request_models.CatalogQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid catalog filters")
		return
	}

	products, err := cc.catalogService.ListProducts(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, products, "Products fetched successfully")
}
