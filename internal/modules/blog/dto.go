package blog

import (
	"time"

	"portfolio/internal/domain"
)

const (
	defaultLimit = 10
	maxLimit     = 50
)

type PostResponse struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Excerpt       string    `json:"excerpt,omitempty"`
	Content       string    `json:"content"`
	Category      string    `json:"category,omitempty"`
	Tags          string    `json:"tags,omitempty"`
	Author        string    `json:"author"`
	FeaturedImage string    `json:"featured_image,omitempty"`
	ReadingTime   int       `json:"reading_time,omitempty"`
	PublishedAt   time.Time `json:"published_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ListResponse struct {
	Posts []PostResponse `json:"posts"`
	Total int64          `json:"total"`
}

func toPostResponse(p *domain.BlogPost) PostResponse {
	author := p.Author
	if author == "" {
		author = domain.DefaultBlogAuthor
	}
	return PostResponse{
		ID:            p.ID,
		Title:         p.Title,
		Slug:          p.Slug,
		Excerpt:       p.Excerpt,
		Content:       p.Content,
		Category:      p.Category,
		Tags:          p.Tags,
		Author:        author,
		FeaturedImage: p.FeaturedImage,
		ReadingTime:   p.ReadingTime,
		PublishedAt:   p.PublishedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toPostResponses(posts []domain.BlogPost) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, toPostResponse(&posts[i]))
	}
	return out
}
