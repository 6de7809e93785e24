package app

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sahilchouksey/study-abroad-api/api"
	"github.com/sahilchouksey/study-abroad-api/config"
	"github.com/sahilchouksey/study-abroad-api/database"
	"github.com/sahilchouksey/study-abroad-api/router"
	"github.com/sahilchouksey/study-abroad-api/services/cron"
	"github.com/sahilchouksey/study-abroad-api/utils/cache"
	"github.com/sahilchouksey/study-abroad-api/utils/middleware"
	"gorm.io/gorm"
)

func SetupAndRunServer() error {

	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	// Initialize GORM database connection
	store, err := database.StartGORM()
	if err != nil {
		print("Check whether the Postgres is running or not\n")
		return err
	}

	if err := store.Init(); err != nil {
		print("Failed to initialize database tables\n")
		return err
	}

	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		return fmt.Errorf("failed to get GORM DB instance")
	}

	// Seed starter data (admin user, sample catalog)
	if os.Getenv("SEED_ON_START") != "false" {
		if err := database.NewSeeder(db).SeedAll(); err != nil {
			log.Printf("Warning: seeding failed: %v", err)
		}
	}

	// Redis backs anonymous comparison sets
	redisURL := getEnv.REDIS_URL
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}
	redisCache, err := cache.NewRedisCache(redisURL)
	if err != nil {
		print("Check whether Redis is running or not\n")
		return err
	}

	// Scheduled maintenance (only if enabled via environment variable)
	var cronManager *cron.Manager
	if os.Getenv("CRON_ENABLED") != "false" { // Default to enabled
		cronManager = cron.NewManager(db, redisCache)
		if err := cronManager.Start(); err != nil {
			log.Printf("Warning: failed to start cron jobs: %v", err)
		}
	}

	// Defer closing DB, Redis and stopping cron jobs
	defer func() {
		if cronManager != nil {
			cronManager.Stop()
		}
		redisCache.Close()
		store.Close()
	}()

	// Init API
	var server *api.APIServer = api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT))
	app := server.GetEngine()

	// Attach middleware
	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    getEnv.ALLOWED_ORIGINS,
		RateLimitRequests: 120,
		RateLimitWindow:   time.Minute,
	})

	// Setup routes
	router.SetupRoutes(app, store, redisCache, getEnv)

	// Get the PORT & start the server
	return server.Run()
}
