package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/nicfin/finhealth-service/internal/config"
	"github.com/nicfin/finhealth-service/internal/handler"
	"github.com/nicfin/finhealth-service/internal/integrations/insight"
	"github.com/nicfin/finhealth-service/internal/middleware"
	"github.com/nicfin/finhealth-service/internal/service"
	"github.com/nicfin/finhealth-service/internal/utils/email"
)

func main() {
	// Load .env for local development; missing file is fine
	_ = godotenv.Load()

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize layers
	insightClient := insight.NewClient(cfg, logger)
	svc := service.NewService(insightClient, logger)
	mailer := email.NewSender(cfg, logger)
	h := handler.NewHandler(svc, mailer)

	// Setup router
	r := mux.NewRouter()
	r.Use(middleware.RequestLogging(logger))
	r.HandleFunc("/analyze", h.Analyze).Methods("POST")
	r.HandleFunc("/dashboard", h.BuildDashboard).Methods("POST")
	r.HandleFunc("/dashboard/email", h.EmailDashboardReport).Methods("POST")
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods("GET")

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:        addr,
		Handler:     r,
		ReadTimeout: 10 * time.Second,
		// Dashboard requests wait on the text-generation service
		WriteTimeout: 60 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
