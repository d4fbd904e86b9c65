package repositories

import (
	"context"

	"gorm.io/gorm"

	"credimatch/internal/models/db_models"
)

// ProductFilter mirrors the parameters the quiz projects from a preference
// profile. Zero values do not filter.
type ProductFilter struct {
	Usage      string
	QuotaMin   float64
	QuotaMax   float64
	Brand      string
	RAMMin     int
	StorageMin int
	InStock    bool
	Condition  string
}

type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter, page, pageSize int) ([]db_models.Product, error)
	ListAll(ctx context.Context) ([]db_models.Product, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) List(ctx context.Context, filter ProductFilter, page, pageSize int) ([]db_models.Product, error) {
	q := r.db.WithContext(ctx).Model(&db_models.Product{})

	if filter.Usage != "" {
		q = q.Where("? = ANY(usage_tags)", filter.Usage)
	}
	if filter.QuotaMin > 0 {
		q = q.Where("monthly_quota >= ?", filter.QuotaMin)
	}
	if filter.QuotaMax > 0 {
		q = q.Where("monthly_quota <= ?", filter.QuotaMax)
	}
	if filter.Brand != "" {
		q = q.Where("LOWER(brand) = LOWER(?)", filter.Brand)
	}
	if filter.RAMMin > 0 {
		q = q.Where("ram_gb >= ?", filter.RAMMin)
	}
	if filter.StorageMin > 0 {
		q = q.Where("storage_gb >= ?", filter.StorageMin)
	}
	if filter.InStock {
		q = q.Where("in_stock = ?", true)
	}
	if filter.Condition != "" {
		q = q.Where("condition = ?", filter.Condition)
	}

	offset := (page - 1) * pageSize

	var products []db_models.Product
	err := q.Order("monthly_quota ASC").
		Offset(offset).
		Limit(pageSize).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) ListAll(ctx context.Context) ([]db_models.Product, error) {
	var products []db_models.Product
	if err := r.db.WithContext(ctx).Order("price ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
