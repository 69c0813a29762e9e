package blog

import (
	"context"

	"github.com/sirupsen/logrus"

	"portfolio/internal/domain"
	"portfolio/internal/repository"
)

// Service reads published posts. Persistence failures on these public,
// non-critical reads are deliberately downgraded to empty results:
// availability is favored over error visibility, and the failure is
// only observable in the logs.
type Service struct {
	repo *repository.BlogPostRepository
	log  *logrus.Logger
}

func NewService(repo *repository.BlogPostRepository, log *logrus.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// List returns one page of published posts and the total count. limit
// defaults to 10 and is clamped to 50; a negative offset becomes 0.
func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.BlogPost, int64) {
	limit = clampLimit(limit)
	if offset < 0 {
		offset = 0
	}

	posts, total, err := s.repo.ListPublished(ctx, limit, offset)
	if err != nil {
		s.log.WithError(err).Warn("blog list failed, returning empty page")
		return []domain.BlogPost{}, 0
	}
	return posts, total
}

// GetBySlug returns nil for both "not found" and "query failed".
func (s *Service) GetBySlug(ctx context.Context, slug string) *domain.BlogPost {
	post, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		s.log.WithError(err).WithField("slug", slug).Warn("blog lookup failed, returning null")
		return nil
	}
	return post
}

// GetByCategory returns matching published posts, or an empty list on
// failure.
func (s *Service) GetByCategory(ctx context.Context, category string, limit int) []domain.BlogPost {
	posts, err := s.repo.ListByCategory(ctx, category, clampLimit(limit))
	if err != nil {
		s.log.WithError(err).WithField("category", category).Warn("blog category query failed, returning empty list")
		return []domain.BlogPost{}
	}
	return posts
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
