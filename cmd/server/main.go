package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/sakmpar/social-blog/internal/router"
	"github.com/sakmpar/social-blog/pkg/config"
	"github.com/sakmpar/social-blog/validators"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connections
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB() // Ensure database connections are closed when main exits

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	sched := router.SetupRoutes(e, db, cfg)

	// Validator
	e.Validator = validators.NewValidator()

	// Auto content generation runs from boot; admins can stop and restart
	// it through the admin API.
	if err := sched.Start(cfg.SchedulerInterval, 0); err != nil {
		log.Printf("Failed to start content scheduler: %v", err)
	}
	defer sched.Stop()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
