package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/Adwait4291/GroqResume/internal/config"
	"github.com/Adwait4291/GroqResume/internal/handlers"
	"github.com/Adwait4291/GroqResume/internal/logger"
	"github.com/Adwait4291/GroqResume/internal/services"
	"github.com/Adwait4291/GroqResume/internal/session"
	"github.com/Adwait4291/GroqResume/internal/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}
	log.Println("✅ Config loaded successfully")

	zlog, err := logger.New(cfg.Log.Level, cfg.Log.JSON)
	if err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	// Initialize the completion provider
	var completion services.CompletionService
	switch cfg.Provider.Name {
	case config.ProviderGemini:
		completion, err = services.NewGeminiService(cfg.Provider.Gemini.APIKey, cfg.Provider.Gemini.Model)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Gemini: %v", err)
		}
	default:
		completion = services.NewGroqService(cfg.Provider.Groq.APIKey, cfg.Provider.Groq.BaseURL, cfg.Provider.Groq.Model)
	}
	log.Printf("✅ Completion provider %q initialized (model %s)\n", cfg.Provider.Name, completion.Model())

	// Initialize services
	pdfParser := services.NewPDFParserService(zlog)

	retryPolicy := services.RetryPolicy{
		MaxAttempts:  cfg.Retry.MaxAttempts,
		InitialDelay: cfg.Retry.InitialDelay,
		MaxDelay:     cfg.Retry.MaxDelay,
		Timeout:      cfg.Provider.Timeout,
	}
	analyzer := services.NewAnalyzerService(completion, retryPolicy, zlog)
	log.Println("✅ Services initialized successfully")

	// Initialize the session store and start its janitor
	sessions := session.NewStore(cfg.Session.TTL, zlog)
	sessions.Start(context.Background())
	log.Println("✅ Session store started")

	// Initialize Handlers
	uploadHandler := handlers.NewUploadHandler(sessions, pdfParser, cfg.Upload.MaxFileSize, zlog)
	analyzeHandler := handlers.NewAnalyzeHandler(sessions, analyzer, pdfParser, cfg.Upload.MaxFileSize, zlog)
	reportHandler := handlers.NewReportHandler(sessions)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Analyzer Pro",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Upload.MaxFileSize),
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/resume", uploadHandler.HandleUpload)
	api.Post("/analyze", analyzeHandler.HandleAnalyze)
	api.Get("/session", reportHandler.HandleGetSession)
	api.Get("/report", reportHandler.HandleDownloadReport)

	// Root route serves the single-page UI
	app.Get("/", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(web.IndexHTML)
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		sessions.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)
	log.Printf("📖 Open http://localhost%s in your browser\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
