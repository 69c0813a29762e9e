package repository

import (
	"context"
	"errors"

	"portfolio/internal/domain"

	"gorm.io/gorm"
)

type PortfolioFileRepository struct {
	db *gorm.DB
}

func NewPortfolioFileRepository(db *gorm.DB) *PortfolioFileRepository {
	return &PortfolioFileRepository{db: db}
}

func (r *PortfolioFileRepository) Create(ctx context.Context, f *domain.PortfolioFile) error {
	return r.db.WithContext(ctx).Create(f).Error
}

// GetByID returns (nil, nil) when the row does not exist; callers
// decide whether absence is an error.
func (r *PortfolioFileRepository) GetByID(ctx context.Context, id int64) (*domain.PortfolioFile, error) {
	var f domain.PortfolioFile
	err := r.db.WithContext(ctx).First(&f, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *PortfolioFileRepository) ListByUserID(ctx context.Context, userID int64) ([]domain.PortfolioFile, error) {
	var files []domain.PortfolioFile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("uploaded_at DESC").
		Find(&files).Error
	return files, err
}

// UpdateFields applies a partial update and returns the fresh row.
func (r *PortfolioFileRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) (*domain.PortfolioFile, error) {
	if len(fields) > 0 {
		err := r.db.WithContext(ctx).
			Model(&domain.PortfolioFile{}).
			Where("id = ?", id).
			Updates(fields).Error
		if err != nil {
			return nil, err
		}
	}
	return r.GetByID(ctx, id)
}

// Delete removes the metadata row only. The stored object is kept; see
// the retention note in DESIGN.md.
func (r *PortfolioFileRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.PortfolioFile{}, id).Error
}
