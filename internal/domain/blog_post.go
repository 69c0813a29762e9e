package domain

import "time"

// DefaultBlogAuthor is used when a post carries no explicit author.
const DefaultBlogAuthor = "Ahmed Mahmoud"

// BlogPost is one published article. The API reads these; authoring
// happens out of band (see cmd/seed).
type BlogPost struct {
	ID            int64     `gorm:"column:id;primaryKey" json:"id"`
	Title         string    `gorm:"column:title;size:255" json:"title"`
	Slug          string    `gorm:"column:slug;size:255;uniqueIndex" json:"slug"`
	Excerpt       string    `gorm:"column:excerpt;type:text" json:"excerpt,omitempty"`
	Content       string    `gorm:"column:content;type:text" json:"content"`
	Category      string    `gorm:"column:category;size:100" json:"category,omitempty"`
	Tags          string    `gorm:"column:tags" json:"tags,omitempty"` // comma-delimited
	Author        string    `gorm:"column:author;size:255" json:"author"`
	FeaturedImage string    `gorm:"column:featured_image" json:"featured_image,omitempty"`
	ReadingTime   int       `gorm:"column:reading_time" json:"reading_time,omitempty"`
	IsPublished   int       `gorm:"column:is_published;default:0" json:"is_published"`
	PublishedAt   time.Time `gorm:"column:published_at" json:"published_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (BlogPost) TableName() string { return "blog_posts" }
