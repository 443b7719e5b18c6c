package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devimpact/impactboard/internal/handlers"
	"github.com/devimpact/impactboard/internal/middleware"
	"github.com/devimpact/impactboard/internal/repositories"
	"github.com/devimpact/impactboard/internal/services"
	"github.com/devimpact/impactboard/pkg/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Set Gin mode
	gin.SetMode(config.AppConfig.Server.Mode)

	// Load the snapshot once at startup. A malformed or missing snapshot
	// is fatal: the engine must not serve any request without it.
	snapshotRepo, err := repositories.LoadSnapshotRepository(config.AppConfig.Snapshot.Path)
	if err != nil {
		log.Fatalf("Failed to load snapshot: %v", err)
	}
	log.Printf("Snapshot loaded: repo=%s fetched_at=%s contributors=%d prs=%d",
		snapshotRepo.Repo(), snapshotRepo.FetchedAt(), len(snapshotRepo.Usernames()), len(snapshotRepo.PullRequests()))

	// Initialize dependencies
	impactScoreService := services.NewImpactScoreService()
	rankingService := services.NewRankingService(snapshotRepo, impactScoreService)
	trendService := services.NewTrendService(snapshotRepo)
	methodologyService := services.NewMethodologyService()
	exportService := services.NewExportService(rankingService)

	// Initialize router
	router := gin.Default()

	// Apply middleware
	router.Use(middleware.RequestID())
	router.Use(cors.Default()) // the dashboard frontend runs on its own origin

	// Setup routes
	setupRoutes(router, snapshotRepo, rankingService, trendService, methodologyService, exportService)

	// Setup server
	server := &http.Server{
		Addr:         ":" + config.AppConfig.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(config.AppConfig.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.AppConfig.Server.WriteTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s", config.AppConfig.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	log.Println("Server stopped")
}

func setupRoutes(
	router *gin.Engine,
	snapshotRepo *repositories.SnapshotRepository,
	rankingService *services.RankingService,
	trendService *services.TrendService,
	methodologyService *services.MethodologyService,
	exportService *services.ExportService,
) {
	// Initialize handlers
	homeHandler := handlers.NewHomeHandler(snapshotRepo)
	engineersHandler := handlers.NewEngineersHandler(rankingService)
	trendsHandler := handlers.NewTrendsHandler(rankingService, trendService)
	methodologyHandler := handlers.NewMethodologyHandler(methodologyService)
	exportHandler := handlers.NewExportHandler(exportService)
	healthHandler := handlers.NewHealthHandler()

	// Root endpoint
	router.GET("/", homeHandler.Index)

	// Query API
	api := router.Group("/api")
	{
		api.GET("/top-engineers", engineersHandler.TopEngineers)
		api.GET("/all-engineers", engineersHandler.AllEngineers)
		api.GET("/trends", trendsHandler.Trends)
		api.GET("/methodology", methodologyHandler.Methodology)
		api.GET("/export", exportHandler.Export)
	}

	// Health check endpoint
	router.GET("/health", healthHandler.HealthCheck)

	// 404 handler for everything else
	notFoundHandler := handlers.NewNotFoundHandler()
	router.NoRoute(notFoundHandler.NotFound)
}
