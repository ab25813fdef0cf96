package rest

import (
	"net/http"
	"os"

	"endoguard/internal/service"
	"endoguard/internal/transport/rest/handler"
	"endoguard/internal/transport/rest/middleware"

	"github.com/gorilla/mux"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService      *service.AuthService
	WizardService    *service.WizardService
	ReportService    *service.ReportService
	AnalyticsService *service.AnalyticsService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	taxonomyHandler := handler.NewTaxonomyHandler()
	assessmentHandler := handler.NewAssessmentHandler(c.WizardService)
	reportHandler := handler.NewReportHandler(c.WizardService, c.ReportService, c.AnalyticsService)
	analyticsHandler := handler.NewAnalyticsHandler(c.AnalyticsService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/taxonomy", taxonomyHandler.Get).Methods("GET", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Wizard routes work anonymously; a valid token attaches the user so
	// completed assessments land in their history
	wizardRoutes := v1.NewRoute().Subrouter()
	wizardRoutes.Use(authMW.OptionalUser)

	wizardRoutes.HandleFunc("/assessments", assessmentHandler.Create).Methods("POST", "OPTIONS")
	wizardRoutes.HandleFunc("/assessments/{id}", assessmentHandler.Get).Methods("GET", "OPTIONS")
	wizardRoutes.HandleFunc("/assessments/{id}", assessmentHandler.Patch).Methods("PATCH", "OPTIONS")
	wizardRoutes.HandleFunc("/assessments/{id}", assessmentHandler.Abandon).Methods("DELETE", "OPTIONS")
	wizardRoutes.HandleFunc("/assessments/{id}/toggle", assessmentHandler.Toggle).Methods("POST", "OPTIONS")
	wizardRoutes.HandleFunc("/assessments/{id}/next", assessmentHandler.Next).Methods("POST", "OPTIONS")
	wizardRoutes.HandleFunc("/assessments/{id}/previous", assessmentHandler.Previous).Methods("POST", "OPTIONS")
	wizardRoutes.HandleFunc("/assessments/{id}/submit", assessmentHandler.Submit).Methods("POST", "OPTIONS")
	wizardRoutes.HandleFunc("/assessments/{id}/results", assessmentHandler.Results).Methods("GET", "OPTIONS")
	wizardRoutes.HandleFunc("/assessments/{id}/card.png", reportHandler.ShareCard).Methods("GET", "OPTIONS")
	wizardRoutes.HandleFunc("/assessments/{id}/share-links", reportHandler.ShareLinks).Methods("GET", "OPTIONS")

	// Authenticated routes
	userRoutes := v1.NewRoute().Subrouter()
	userRoutes.Use(authMW.RequireUser)

	userRoutes.HandleFunc("/assessments", assessmentHandler.History).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/assessments/{id}/record", assessmentHandler.HistoryRecord).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/assessments/{id}/report.pdf", reportHandler.DownloadPDF).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/analytics/usage", analyticsHandler.Usage).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PATCH, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
