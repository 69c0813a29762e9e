package repository

import (
	"context"
	"errors"

	"portfolio/internal/domain"

	"gorm.io/gorm"
)

type BlogPostRepository struct {
	db *gorm.DB
}

func NewBlogPostRepository(db *gorm.DB) *BlogPostRepository {
	return &BlogPostRepository{db: db}
}

// ListPublished returns one page of published posts, newest first,
// plus the total published count.
func (r *BlogPostRepository) ListPublished(ctx context.Context, limit, offset int) ([]domain.BlogPost, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&domain.BlogPost{}).
		Where("is_published = ?", 1).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var posts []domain.BlogPost
	err = r.db.WithContext(ctx).
		Where("is_published = ?", 1).
		Order("published_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, total, err
}

// GetBySlug returns (nil, nil) when no published post matches.
func (r *BlogPostRepository) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	var post domain.BlogPost
	err := r.db.WithContext(ctx).
		Where("slug = ? AND is_published = ?", slug, 1).
		First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *BlogPostRepository) ListByCategory(ctx context.Context, category string, limit int) ([]domain.BlogPost, error) {
	var posts []domain.BlogPost
	err := r.db.WithContext(ctx).
		Where("category = ? AND is_published = ?", category, 1).
		Order("published_at DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}
