package services

import (
	"context"
	"log"

	"credimatch/internal/models/request_models"
	"credimatch/internal/models/response_models"
	"credimatch/internal/quiz"
	"credimatch/internal/repositories"
	"credimatch/pkg/utils"
)

type CatalogServiceInterface interface {
	ListProducts(ctx context.Context, query request_models.CatalogQuery) (*response_models.CatalogResponse, error)
}

type CatalogService struct {
	productRepo repositories.ProductRepository
}

func NewCatalogService(productRepo repositories.ProductRepository) CatalogServiceInterface {
	return &CatalogService{productRepo: productRepo}
}

func (s *CatalogService) ListProducts(ctx context.Context, query request_models.CatalogQuery) (*response_models.CatalogResponse, error) {
	page := query.Page
	if page == 0 {
		page = 1
	}
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	pageSize := query.PageSize
	if pageSize == 0 {
		pageSize = 20
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	filter := repositories.ProductFilter{
		Usage:      query.Usage,
		QuotaMin:   query.QuotaMin,
		QuotaMax:   query.QuotaMax,
		Brand:      query.Brand,
		RAMMin:     query.RAMMin,
		StorageMin: query.StorageMin,
		InStock:    query.Stock == quiz.StockAvailable,
		Condition:  query.Condition,
	}

	products, err := s.productRepo.List(ctx, filter, page, pageSize)
	if err != nil {
		log.Printf("Error listing catalog products: %v", err)
		return nil, utils.ErrDatabaseError
	}

	views := make([]response_models.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, productView(mapProduct(p)))
	}

	return &response_models.CatalogResponse{
		Products: views,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
