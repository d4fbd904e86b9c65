package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"credimatch/internal/models/db_models"
)

type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*db_models.AdminAccount, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*db_models.AdminAccount, error) {
	var account db_models.AdminAccount
	err := r.db.WithContext(ctx).First(&account, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}
