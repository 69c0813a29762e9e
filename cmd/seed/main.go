package main

import (
	"log"
	"os"
	"time"

	"portfolio/internal/database"
	"portfolio/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "portfolio.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.PortfolioFile{},
		&domain.ContactMessage{},
		&domain.BlogPost{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old blog posts...")
	db.Exec("DELETE FROM blog_posts")

	now := time.Now()
	posts := []domain.BlogPost{
		{
			Title:       "Sustainability and Green Operations: The Future of Hospitality",
			Slug:        "sustainability-green-operations-future-hospitality",
			Excerpt:     "Exploring operations trends",
			Content:     "# Sustainability and Green Operations\n\nHospitality operations are under growing pressure to cut waste, energy and water use without hurting the guest experience. This article walks through the practices that actually move the needle: supplier audits, smart metering, and staff-led conservation programs.\n",
			Category:    "Operations Trends",
			Tags:        "sustainability,operations,hospitality",
			Author:      domain.DefaultBlogAuthor,
			ReadingTime: 8,
			IsPublished: 1,
			PublishedAt: now.AddDate(0, 0, -14),
		},
		{
			Title:       "Digital Transformation in Hospitality: From Legacy Systems to Smart Operations",
			Slug:        "digital-transformation-hospitality-legacy-systems-smart-operations",
			Excerpt:     "Exploring operations trends",
			Content:     "# Digital Transformation in Hospitality\n\nMost hotels still run on systems designed decades ago. Moving to integrated, cloud-based operations is less about technology and more about process: what to migrate first, how to retrain teams, and where automation pays off fastest.\n",
			Category:    "Operations Trends",
			Tags:        "digital transformation,technology,operations",
			Author:      domain.DefaultBlogAuthor,
			ReadingTime: 10,
			IsPublished: 1,
			PublishedAt: now.AddDate(0, 0, -7),
		},
		{
			Title:       "Building a Culture of Service Excellence",
			Slug:        "building-culture-service-excellence",
			Excerpt:     "Exploring leadership",
			Content:     "# Building a Culture of Service Excellence\n\nService quality is a leadership outcome, not a training outcome. This piece covers hiring for attitude, measuring what matters, and the daily rituals that keep standards high.\n",
			Category:    "Leadership",
			Tags:        "leadership,service,teams",
			Author:      domain.DefaultBlogAuthor,
			ReadingTime: 6,
			IsPublished: 1,
			PublishedAt: now.AddDate(0, 0, -2),
		},
	}

	for _, p := range posts {
		if err := db.Create(&p).Error; err != nil {
			log.Fatalf("failed to seed post %q: %v", p.Slug, err)
		}
		log.Printf("Seeded: %s", p.Title)
	}

	log.Println("Blog posts seeded successfully")
}
