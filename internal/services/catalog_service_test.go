package services

import (
	"context"
	"errors"
	"testing"

	"credimatch/internal/models/db_models"
	"credimatch/internal/models/request_models"
	"credimatch/internal/repositories"
	"credimatch/pkg/utils"
)

// filterRecordingRepo captures the filter the service builds.
type filterRecordingRepo struct {
	mockProductRepo
	lastFilter   repositories.ProductFilter
	lastPage     int
	lastPageSize int
}

func (m *filterRecordingRepo) List(_ context.Context, filter repositories.ProductFilter, page, pageSize int) ([]db_models.Product, error) {
	m.lastFilter = filter
	m.lastPage = page
	m.lastPageSize = pageSize
	return m.products, m.err
}

func TestListProductsDefaultsPagination(t *testing.T) {
	repo := &filterRecordingRepo{}
	svc := NewCatalogService(repo)

	resp, err := svc.ListProducts(context.Background(), request_models.CatalogQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Page != 1 || resp.PageSize != 20 {
		t.Errorf("pagination = %d/%d, want 1/20", resp.Page, resp.PageSize)
	}
	if repo.lastPage != 1 || repo.lastPageSize != 20 {
		t.Errorf("repo saw %d/%d, want 1/20", repo.lastPage, repo.lastPageSize)
	}
}

func TestListProductsValidatesPagination(t *testing.T) {
	svc := NewCatalogService(&filterRecordingRepo{})

	if _, err := svc.ListProducts(context.Background(), request_models.CatalogQuery{Page: -1}); !errors.Is(err, utils.ErrInvalidPage) {
		t.Errorf("err = %v, want ErrInvalidPage", err)
	}
	if _, err := svc.ListProducts(context.Background(), request_models.CatalogQuery{PageSize: 500}); !errors.Is(err, utils.ErrInvalidPageSize) {
		t.Errorf("err = %v, want ErrInvalidPageSize", err)
	}
}

func TestListProductsBuildsFilter(t *testing.T) {
	repo := &filterRecordingRepo{}
	svc := NewCatalogService(repo)

	_, err := svc.ListProducts(context.Background(), request_models.CatalogQuery{
		Usage:      "gaming",
		QuotaMin:   80,
		QuotaMax:   250,
		Brand:      "lenovo",
		RAMMin:     16,
		StorageMin: 512,
		Stock:      "available",
		Condition:  "new",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := repo.lastFilter
	if got.Usage != "gaming" || got.Brand != "lenovo" || got.Condition != "new" {
		t.Errorf("filter = %+v", got)
	}
	if got.QuotaMin != 80 || got.QuotaMax != 250 {
		t.Errorf("quota range = [%v,%v], want [80,250]", got.QuotaMin, got.QuotaMax)
	}
	if got.RAMMin != 16 || got.StorageMin != 512 {
		t.Errorf("spec minimums = %d/%d, want 16/512", got.RAMMin, got.StorageMin)
	}
	if !got.InStock {
		t.Error("expected InStock filter for stock=available")
	}
}

func TestListProductsStorageFailure(t *testing.T) {
	repo := &filterRecordingRepo{}
	repo.err = errors.New("connection reset")
	svc := NewCatalogService(repo)

	if _, err := svc.ListProducts(context.Background(), request_models.CatalogQuery{}); !errors.Is(err, utils.ErrDatabaseError) {
		t.Errorf("err = %v, want ErrDatabaseError", err)
	}
}
