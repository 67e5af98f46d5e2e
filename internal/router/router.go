package router

import (
	"context"
	"log"
	"strings"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sakmpar/social-blog/internal/feedcache"
	"github.com/sakmpar/social-blog/internal/generator"
	"github.com/sakmpar/social-blog/internal/handlers"
	"github.com/sakmpar/social-blog/internal/middleware"
	"github.com/sakmpar/social-blog/internal/models"
	"github.com/sakmpar/social-blog/internal/repositories"
	"github.com/sakmpar/social-blog/internal/scheduler"
	"github.com/sakmpar/social-blog/internal/sitegen"
	"github.com/sakmpar/social-blog/pkg/config"
	"golang.org/x/crypto/bcrypt"
)

// uploadBodyLimit caps media upload request bodies
const uploadBodyLimit = "16M"

// defaultCategories are seeded on first boot
var defaultCategories = []string{
	"General", "Technology", "News", "Trending",
	"Entertainment", "Sports", "Business", "Health",
}

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(eMiddleware.Logger())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies.
// It returns the content scheduler so the caller can manage its lifecycle.
func SetupRoutes(e *echo.Echo, db *config.DB, cfg *config.Config) *scheduler.Scheduler {
	pgdb := db.Postgres

	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Share{},
		&models.Category{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	postRepo := repositories.NewPostgresPostRepository(pgdb)
	commentRepo := repositories.NewPostgresCommentRepository(pgdb)
	likeRepo := repositories.NewPostgresLikeRepository(pgdb)
	shareRepo := repositories.NewPostgresShareRepository(pgdb)
	categoryRepo := repositories.NewPostgresCategoryRepository(pgdb)
	notificationRepo := repositories.NewPostgresNotificationRepository(pgdb)
	statsRepo := repositories.NewPostgresStatsRepository(pgdb)

	seedAdminUser(userRepo, cfg)
	seedCategories(categoryRepo)

	cache := feedcache.New(db.Redis)
	site := sitegen.SiteInfo{
		Name:        cfg.SiteName,
		Description: "Trending news, stories and community posts",
		URL:         cfg.SiteURL,
	}

	gen := generator.New(postRepo, userRepo, cfg.UnsplashAccessKey, cfg.AdminUsername, cfg.SiteName)
	sched := scheduler.New(generateFunc(gen, cache))

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// SEO artifacts at the site root
	seoHandler := handlers.NewSEOHandler(postRepo, site)
	seoHandler.RegisterSEORoutes(e)
	log.Println("SEO routes configured.")

	// Uploaded media
	e.Static("/uploads", cfg.UploadDir)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, cfg.SecretKey)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Public routes (JWT claims picked up when present) ---
	public := e.Group("/api/v1")
	public.Use(middleware.OptionalJWTMiddleware(cfg.SecretKey))

	feedHandler := handlers.NewFeedHandler(postRepo, userRepo, commentRepo, likeRepo, shareRepo, cache)
	feedHandler.RegisterFeedRoutes(public)
	log.Println("Feed routes configured.")

	statsHandler := handlers.NewStatsHandler(statsRepo)
	statsHandler.RegisterStatsRoutes(public)

	categoryHandler := handlers.NewCategoryHandler(categoryRepo)
	categoryHandler.RegisterCategoryRoutes(public)
	log.Println("Stats and category routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(cfg.SecretKey))
	log.Println("JWT authentication middleware applied to /api/v1 group.")

	// User profile routes
	userHandler := handlers.NewUserHandler(userRepo, postRepo)
	userHandler.RegisterProfileRoutes(api)
	log.Println("User profile routes configured.")

	// Post routes
	postHandler := handlers.NewPostHandler(postRepo, cache)
	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	// Comment routes
	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo, userRepo, notificationRepo)
	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	// Like routes
	likeHandler := handlers.NewLikeHandler(likeRepo, postRepo, notificationRepo)
	likeHandler.RegisterLikeRoutes(api)
	log.Println("Like routes configured.")

	// Share routes
	shareHandler := handlers.NewShareHandler(shareRepo, postRepo)
	shareHandler.RegisterShareRoutes(api)
	log.Println("Share routes configured.")

	// Notification routes
	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	notificationHandler.RegisterNotificationRoutes(api)
	log.Println("Notification routes configured.")

	// Media upload routes
	mediaHandler := handlers.NewMediaHandler(cfg.UploadDir)
	media := e.Group("/api/v1")
	media.Use(middleware.JWTAuthMiddleware(cfg.SecretKey), eMiddleware.BodyLimit(uploadBodyLimit))
	mediaHandler.RegisterMediaRoutes(media)
	log.Println("Media routes configured.")

	// --- Admin routes (require JWT + admin flag) ---
	admin := e.Group("/api/v1/admin")
	admin.Use(middleware.JWTAuthMiddleware(cfg.SecretKey), middleware.AdminRequired())
	adminHandler := handlers.NewAdminHandler(
		gen, sched, postRepo, commentRepo, userRepo, cache, site, cfg.SchedulerInterval)
	adminHandler.RegisterAdminRoutes(admin)
	log.Println("Admin routes configured.")

	log.Println("All routes configured.")
	return sched
}

// generateFunc adapts the content generator to the scheduler. Cached feed
// pages are dropped after a successful cycle so new posts appear right away.
func generateFunc(gen *generator.Generator, cache *feedcache.Cache) scheduler.GenerateFunc {
	return func(ctx context.Context, language string, count int) (int, error) {
		result, err := gen.GenerateAndStore(ctx, language, count, "Trending")
		if err != nil {
			return 0, err
		}
		cache.Invalidate(ctx)
		return result.Count, nil
	}
}

// seedAdminUser ensures the admin account exists
func seedAdminUser(userRepo repositories.UserRepository, cfg *config.Config) {
	if _, err := userRepo.GetUserByUsername(cfg.AdminUsername); err == nil {
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin := &models.User{
		Username:     cfg.AdminUsername,
		Email:        cfg.AdminEmail,
		PasswordHash: string(hashedPassword),
		FullName:     cfg.SiteName,
		Bio:          "Site administrator",
		IsActive:     true,
		IsAdmin:      true,
	}
	if err := userRepo.CreateUser(admin); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
	log.Printf("Seeded admin user %q.", cfg.AdminUsername)
}

// seedCategories creates the default category set when missing
func seedCategories(categoryRepo repositories.CategoryRepository) {
	existing, err := categoryRepo.GetCategories()
	if err != nil {
		log.Printf("Failed to read categories: %v", err)
		return
	}
	if len(existing) > 0 {
		return
	}

	for _, name := range defaultCategories {
		category := &models.Category{
			Name: name,
			Slug: strings.ToLower(strings.ReplaceAll(name, " ", "-")),
		}
		if err := categoryRepo.CreateCategory(category); err != nil {
			log.Printf("Failed to seed category %q: %v", name, err)
		}
	}
	log.Println("Seeded default categories.")
}
