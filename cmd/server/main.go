package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"endoguard/internal/cache"
	"endoguard/internal/config"
	"endoguard/internal/repository"
	"endoguard/internal/service"
	"endoguard/internal/transport/rest"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	godotenv.Load()

	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	assessorCfg := config.DefaultAssessorConfig()
	if assessorCfg.IsEnabled() {
		log.Printf("Assessor: %s", assessorCfg.BaseURL)
	} else {
		log.Println("Assessor: NOT SET (using local risk engine)")
	}

	analyticsCfg := config.DefaultAnalyticsConfig()
	if analyticsCfg.IsEnabled() {
		log.Printf("Analytics: %s", analyticsCfg.BaseURL)
	} else {
		log.Println("Analytics: NOT SET (local counters only)")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	redisAddr := strings.TrimPrefix(cfg.RedisAddr, "redis://")
	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize repositories
	assessmentRepo := repository.NewAssessmentRepo(db)

	// Initialize caches
	sessionCache := cache.NewSessionCache(rdb)
	resultCache := cache.NewResultCache(rdb)
	usageCache := cache.NewUsageCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService(cfg.JWTSecret)
	assessorSvc := service.NewAssessorService(assessorCfg)
	analyticsSvc := service.NewAnalyticsService(analyticsCfg, usageCache)
	wizardSvc := service.NewWizardService(sessionCache, resultCache, assessmentRepo, assessorSvc, analyticsSvc)
	reportSvc := service.NewReportService()

	// Create router with container
	container := &rest.Container{
		AuthService:      authSvc,
		WizardService:    wizardSvc,
		ReportService:    reportSvc,
		AnalyticsService: analyticsSvc,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  GET  /v1/taxonomy")
		log.Println("  POST/GET /v1/assessments")
		log.Println("  GET/PATCH/DELETE /v1/assessments/{id}")
		log.Println("  POST /v1/assessments/{id}/toggle|next|previous|submit")
		log.Println("  GET  /v1/assessments/{id}/results")
		log.Println("  GET  /v1/assessments/{id}/record")
		log.Println("  GET  /v1/assessments/{id}/report.pdf")
		log.Println("  GET  /v1/assessments/{id}/card.png")
		log.Println("  GET  /v1/assessments/{id}/share-links")
		log.Println("  GET  /v1/analytics/usage")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
