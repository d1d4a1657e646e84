package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"hiring-copilot/internal/config"
	"hiring-copilot/internal/handlers"
	"hiring-copilot/internal/middleware"
	"hiring-copilot/internal/repositories"
	"hiring-copilot/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	reportRepo := repositories.NewReportRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize Gemini AI (one client for the process lifetime)
	geminiService, err := services.NewGeminiService(
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		cfg.Gemini.EmbedModel,
		cfg.Gemini.Timeout,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize services
	chunker := services.NewTextChunker()
	extractor := services.NewTextExtractor()
	scorer := services.NewSemanticScorer(geminiService, chunker)
	generator := services.NewReportGenerator(geminiService)
	storage := services.NewBatchStorage(cfg.Storage.TempPath)
	authService := services.NewAuthService(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)
	log.Println("✅ Services initialized successfully")

	// Initialize candidate index
	index, err := services.NewCandidateIndex(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
		geminiService,
		chunker,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := index.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant collection: %v", err)
	}
	log.Println("✅ Candidate index initialized successfully")

	// Initialize analyzer
	analyzer := services.NewAnalyzerService(
		reportRepo,
		extractor,
		scorer,
		generator,
		index,
		storage,
		cfg.Analysis.Concurrency,
	)
	log.Println("✅ Analyzer service initialized")

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userRepo, authService)
	analyzeHandler := handlers.NewAnalyzeHandler(analyzer)
	searchHandler := handlers.NewSearchHandler(index)
	reportHandler := handlers.NewReportHandler(reportRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AI Hiring Co-pilot API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes (paths match what the web front end already calls)
	authRequired := middleware.AuthRequired(authService, userRepo)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AI Hiring Co-pilot Backend is running",
		})
	})

	app.Post("/register", authHandler.HandleRegister)
	app.Post("/token", authHandler.HandleToken)
	app.Get("/users/me/", authRequired, authHandler.HandleMe)
	app.Post("/analyze-resumes", authRequired, analyzeHandler.HandleAnalyze)
	app.Post("/search-candidates", authRequired, searchHandler.HandleSearch)
	app.Get("/reports", authRequired, reportHandler.HandleListReports)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
