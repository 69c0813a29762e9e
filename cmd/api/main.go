package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"portfolio/internal/config"
	"portfolio/internal/database"
	"portfolio/internal/domain"
	"portfolio/internal/logger"
	"portfolio/internal/mailer"
	"portfolio/internal/middleware"
	"portfolio/internal/modules/auth"
	"portfolio/internal/modules/blog"
	"portfolio/internal/modules/contact"
	"portfolio/internal/modules/files"
	jwtsvc "portfolio/internal/pkg/jwt"
	"portfolio/internal/repository"
	"portfolio/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	appLog := logger.New()

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.PortfolioFile{},
		&domain.ContactMessage{},
		&domain.BlogPost{},
	); err != nil {
		log.Fatal(err)
	}

	store, err := storage.NewMinioStore(context.Background(), cfg.Storage)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	fileRepo := repository.NewPortfolioFileRepository(db)
	contactRepo := repository.NewContactMessageRepository(db)
	blogRepo := repository.NewBlogPostRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	mail := mailer.NewClient(cfg.Mail, appLog)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	filesHandler := files.NewHandler(files.NewService(fileRepo, store, appLog))
	contactHandler := contact.NewHandler(contact.NewService(contactRepo, mail, appLog))
	blogHandler := blog.NewHandler(blog.NewService(blogRepo, appLog))

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.RequestLogger(appLog))

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		contactHandler.RegisterRoutes(v1)
		blogHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			filesHandler.RegisterRoutes(protected)
		}
	}

	appLog.WithField("addr", cfg.HTTPAddr).Info("starting API server")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
