package router

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sahilchouksey/study-abroad-api/config"
	"github.com/sahilchouksey/study-abroad-api/database"
	"github.com/sahilchouksey/study-abroad-api/handlers"
	application_handlers "github.com/sahilchouksey/study-abroad-api/handlers/application"
	auth_handlers "github.com/sahilchouksey/study-abroad-api/handlers/auth"
	compare_handlers "github.com/sahilchouksey/study-abroad-api/handlers/compare"
	course_handlers "github.com/sahilchouksey/study-abroad-api/handlers/course"
	document_handlers "github.com/sahilchouksey/study-abroad-api/handlers/document"
	recommend_handlers "github.com/sahilchouksey/study-abroad-api/handlers/recommend"
	scholarship_handlers "github.com/sahilchouksey/study-abroad-api/handlers/scholarship"
	shortlist_handlers "github.com/sahilchouksey/study-abroad-api/handlers/shortlist"
	comparesvc "github.com/sahilchouksey/study-abroad-api/services/compare"
	shortlistsvc "github.com/sahilchouksey/study-abroad-api/services/shortlist"
	"github.com/sahilchouksey/study-abroad-api/services/storage"
	"github.com/sahilchouksey/study-abroad-api/utils/auth"
	"github.com/sahilchouksey/study-abroad-api/utils/cache"
	"github.com/sahilchouksey/study-abroad-api/utils/middleware"
)

// SetupRoutes wires every handler onto the app.
func SetupRoutes(app *fiber.App, store database.Storage, redisCache *cache.RedisCache, env *config.EnviornmentVariable) {
	if env.JWT_SECRET == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	jwtIssuer := env.JWT_ISSUER
	if jwtIssuer == "" {
		jwtIssuer = "study-abroad-api"
	}

	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret:        env.JWT_SECRET,
		Expiry:        24 * time.Hour,
		RefreshExpiry: 7 * 24 * time.Hour,
		Issuer:        jwtIssuer,
	})

	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("Failed to get GORM DB instance")
	}

	spaces, err := storage.NewSpacesClient(storage.SpacesConfig{
		AccessKey: env.DO_SPACES_KEY,
		SecretKey: env.DO_SPACES_SECRET,
		Bucket:    env.DO_SPACES_BUCKET,
		Region:    env.DO_SPACES_REGION,
		Endpoint:  env.DO_SPACES_ENDPOINT,
	})
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, db)

	authHandler := auth_handlers.NewAuthHandler(db, jwtManager)
	courseHandler := course_handlers.NewCourseHandler(db)
	scholarshipHandler := scholarship_handlers.NewScholarshipHandler(db)
	recommendHandler := recommend_handlers.NewRecommendHandler(db)
	compareHandler := compare_handlers.NewCompareHandler(comparesvc.NewService(db, redisCache))
	shortlistHandler := shortlist_handlers.NewShortlistHandler(shortlistsvc.NewService(db))
	documentHandler := document_handlers.NewDocumentHandler(db, spaces)
	applicationHandler := application_handlers.NewApplicationHandler(db)

	app.Get("/ping", func(c *fiber.Ctx) error {
		return handlers.HandleCheckHealth(c, store)
	})

	v1 := app.Group("/api/v1")

	// Auth
	authGroup := v1.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Post("/logout", authMiddleware.Required(), authHandler.Logout)

	// Profile
	v1.Get("/profile", authMiddleware.Required(), authHandler.GetProfile)
	v1.Put("/profile", authMiddleware.Required(), func(c *fiber.Ctx) error {
		if err := authHandler.UpdateProfile(c); err != nil {
			return err
		}
		// Fresh counts after a preference change.
		if userID, ok := middleware.GetUserID(c); ok {
			recommendHandler.InvalidateCounts(userID)
		}
		return nil
	})

	// Course catalog
	courses := v1.Group("/courses")
	courses.Get("/", courseHandler.List)
	courses.Get("/facets", courseHandler.Facets)
	courses.Get("/:id", courseHandler.Get)
	courses.Post("/", authMiddleware.RequireAdmin(), courseHandler.Create)
	courses.Put("/:id", authMiddleware.RequireAdmin(), courseHandler.Update)
	courses.Delete("/:id", authMiddleware.RequireAdmin(), courseHandler.Delete)

	// Scholarship catalog
	scholarships := v1.Group("/scholarships")
	scholarships.Get("/", scholarshipHandler.List)
	scholarships.Get("/:id", scholarshipHandler.Get)
	scholarships.Post("/", authMiddleware.RequireAdmin(), scholarshipHandler.Create)
	scholarships.Put("/:id", authMiddleware.RequireAdmin(), scholarshipHandler.Update)
	scholarships.Delete("/:id", authMiddleware.RequireAdmin(), scholarshipHandler.Delete)

	// Recommendations
	recommendations := v1.Group("/recommendations", authMiddleware.Required())
	recommendations.Get("/courses", recommendHandler.Courses)
	recommendations.Get("/scholarships", recommendHandler.Scholarships)
	recommendations.Get("/count", recommendHandler.Count)

	// Comparison set: works signed-in or anonymous
	compareGroup := v1.Group("/compare", authMiddleware.Optional())
	compareGroup.Get("/", compareHandler.Get)
	compareGroup.Post("/", compareHandler.Add)
	compareGroup.Delete("/:type/:id", compareHandler.Remove)

	// Shortlist: signed-in only
	shortlistGroup := v1.Group("/shortlist", authMiddleware.Required())
	shortlistGroup.Get("/", shortlistHandler.List)
	shortlistGroup.Post("/", shortlistHandler.Add)
	shortlistGroup.Patch("/", shortlistHandler.Update)
	shortlistGroup.Delete("/:type/:id", shortlistHandler.Remove)

	// Application documents
	documents := v1.Group("/documents", authMiddleware.Required())
	documents.Post("/", documentHandler.Upload)
	documents.Get("/", documentHandler.List)
	documents.Get("/:id/download", documentHandler.Download)
	documents.Delete("/:id", documentHandler.Delete)

	// Agency review queue
	agency := v1.Group("/agency", authMiddleware.RequireAgency())
	agency.Get("/documents", documentHandler.ReviewQueue)
	agency.Patch("/documents/:id", documentHandler.Review)
	agency.Get("/documents/:id/download", documentHandler.ReviewDownload)

	// Application progress
	v1.Get("/application/progress", authMiddleware.Required(), applicationHandler.Progress)
}
