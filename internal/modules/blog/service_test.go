package blog

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"portfolio/internal/database"
	"portfolio/internal/domain"
	"portfolio/internal/repository"
)

func newTestLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func setupService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.BlogPost{}))

	return NewService(repository.NewBlogPostRepository(db), newTestLogger()), db
}

func seedPosts(t *testing.T, db *gorm.DB, published int, drafts int) {
	t.Helper()
	now := time.Now()
	for i := 0; i < published; i++ {
		post := domain.BlogPost{
			Title:       fmt.Sprintf("Post %d", i),
			Slug:        fmt.Sprintf("post-%d", i),
			Content:     "content",
			Category:    "Operations Trends",
			Author:      domain.DefaultBlogAuthor,
			IsPublished: 1,
			PublishedAt: now.Add(-time.Duration(i) * time.Hour),
		}
		require.NoError(t, db.Create(&post).Error)
	}
	for i := 0; i < drafts; i++ {
		post := domain.BlogPost{
			Title:   fmt.Sprintf("Draft %d", i),
			Slug:    fmt.Sprintf("draft-%d", i),
			Content: "content",
		}
		require.NoError(t, db.Create(&post).Error)
	}
}

func TestListReturnsPublishedOnly(t *testing.T) {
	svc, db := setupService(t)
	seedPosts(t, db, 3, 2)

	posts, total := svc.List(context.Background(), 0, 0)
	require.Len(t, posts, 3)
	require.EqualValues(t, 3, total)
	for _, p := range posts {
		require.Equal(t, 1, p.IsPublished)
	}
}

func TestListOrdersNewestFirst(t *testing.T) {
	svc, db := setupService(t)
	seedPosts(t, db, 3, 0)

	posts, _ := svc.List(context.Background(), 0, 0)
	require.Len(t, posts, 3)
	require.Equal(t, "post-0", posts[0].Slug, "most recently published comes first")
	require.True(t, posts[0].PublishedAt.After(posts[1].PublishedAt))
	require.True(t, posts[1].PublishedAt.After(posts[2].PublishedAt))
}

func TestListPagination(t *testing.T) {
	svc, db := setupService(t)
	seedPosts(t, db, 12, 0)

	page, total := svc.List(context.Background(), 5, 0)
	require.Len(t, page, 5)
	require.EqualValues(t, 12, total, "total counts all published posts, not the page")

	next, _ := svc.List(context.Background(), 5, 10)
	require.Len(t, next, 2)

	// Default limit is 10.
	defaulted, _ := svc.List(context.Background(), 0, 0)
	require.Len(t, defaulted, 10)
}

func TestClampLimit(t *testing.T) {
	require.Equal(t, defaultLimit, clampLimit(0))
	require.Equal(t, defaultLimit, clampLimit(-5))
	require.Equal(t, 25, clampLimit(25))
	require.Equal(t, maxLimit, clampLimit(100))
}

func TestGetBySlug(t *testing.T) {
	svc, db := setupService(t)
	seedPosts(t, db, 1, 1)

	post := svc.GetBySlug(context.Background(), "post-0")
	require.NotNil(t, post)
	require.Equal(t, "Post 0", post.Title)

	require.Nil(t, svc.GetBySlug(context.Background(), "draft-0"), "drafts are invisible")
	require.Nil(t, svc.GetBySlug(context.Background(), "no-such-slug"))
}

func TestGetByCategory(t *testing.T) {
	svc, db := setupService(t)
	seedPosts(t, db, 2, 0)

	other := domain.BlogPost{
		Title:       "Leading Teams",
		Slug:        "leading-teams",
		Content:     "content",
		Category:    "Leadership",
		IsPublished: 1,
		PublishedAt: time.Now(),
	}
	require.NoError(t, db.Create(&other).Error)

	posts := svc.GetByCategory(context.Background(), "Leadership", 0)
	require.Len(t, posts, 1)
	require.Equal(t, "leading-teams", posts[0].Slug)

	require.Empty(t, svc.GetByCategory(context.Background(), "Cooking", 0))
}

func TestQueryFailuresDegradeToEmptyResults(t *testing.T) {
	svc, db := setupService(t)
	require.NoError(t, db.Migrator().DropTable(&domain.BlogPost{}))

	posts, total := svc.List(context.Background(), 10, 0)
	require.Empty(t, posts)
	require.Zero(t, total)

	require.Nil(t, svc.GetBySlug(context.Background(), "post-0"))
	require.Empty(t, svc.GetByCategory(context.Background(), "Leadership", 10))
}
