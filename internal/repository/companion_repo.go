package repository

import (
	"context"
	"errors"

	"leprive/internal/domain"

	"gorm.io/gorm"
)

type CompanionRepository struct {
	db *gorm.DB
}

func NewCompanionRepository(db *gorm.DB) *CompanionRepository {
	return &CompanionRepository{db: db}
}

// GetAll returns every listed companion ordered as seeded. The gallery is
// small; truncation to the preview size happens in the catalog service.
func (r *CompanionRepository) GetAll(ctx context.Context) ([]domain.Companion, error) {
	var companions []domain.Companion

	err := r.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("id ASC").
		Find(&companions).Error

	return companions, err
}

func (r *CompanionRepository) GetByID(ctx context.Context, id int64) (*domain.Companion, error) {
	var companion domain.Companion

	err := r.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&companion).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &companion, nil
}

func (r *CompanionRepository) Create(ctx context.Context, c *domain.Companion) error {
	return r.db.WithContext(ctx).Create(c).Error
}
