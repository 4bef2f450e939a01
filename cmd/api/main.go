package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"unichip/internal/config"
	"unichip/internal/database"
	"unichip/internal/httpapi"
	"unichip/internal/services"
	"unichip/internal/session"
	"unichip/internal/util"
)

const (
	shutdownTimeout = 30 * time.Second
	readTimeout     = 15 * time.Second
	writeTimeout    = 30 * time.Second
	idleTimeout     = 60 * time.Second
)

func main() {
	log.SetPrefix("[API] ")
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Starting %s v%s", cfg.App.Name, cfg.App.Version)
	log.Printf("Environment: debug=%v, port=%s, host=%s, email=%s", cfg.App.Debug, cfg.App.Port, cfg.App.Host, cfg.Email.Provider)

	// Initialize database
	log.Println("Initializing database connection...")
	if err := database.Init(cfg); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		log.Println("Closing database connections...")
		if err := database.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()
	db := database.GetDB()

	// Create service instances
	log.Println("Initializing services...")
	startCtx, cancelStart := context.WithTimeout(context.Background(), 5*time.Second)
	redisClient := session.Connect(startCtx, cfg.Redis.URL)
	cancelStart()
	if redisClient != nil {
		defer redisClient.Close()
	}
	revocations := session.NewStore(redisClient)

	var loginLimiter session.Limiter
	if cfg.Auth.LoginAttemptsPerMinute > 0 {
		loginLimiter = session.NewLimiter(redisClient, cfg.Auth.LoginAttemptsPerMinute, time.Minute)
	}

	tokens := util.NewTokenIssuer(cfg.Auth.SecretKey, cfg.Auth.SessionTTL(), cfg.Auth.CSRFTTL())
	authSvc := services.NewAuthService(services.NewUserCredentialVerifier(db), tokens, revocations)
	settingsSvc := services.NewSettingsService(db, cfg.Email.DefaultRecipient)
	emailSvc := services.NewEmailService(&cfg.Email)
	if !emailSvc.IsEnabled() {
		log.Println("Warning: email provider is console, inquiry notifications are only logged")
	}
	inquirySvc := services.NewInquiryService(db, emailSvc, settingsSvc, services.IntakePolicy{
		MaskFailuresForUX: cfg.Intake.MaskFailures,
		NotifyTimeout:     cfg.Email.NotifyTimeout(),
	})

	server := httpapi.New(cfg, httpapi.Services{
		Auth:      authSvc,
		Catalog:   services.NewCatalogService(db),
		Inquiries: inquirySvc,
		Chips:     services.NewChipService(db),
		Settings:  settingsSvc,
		Health:    services.NewHealthService(db, cfg.App.Name),

		LoginLimiter: loginLimiter,
	})

	// Create HTTP server with timeouts
	addr := fmt.Sprintf("%s:%s", cfg.App.Host, cfg.App.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      server.Handler(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
		ErrorLog:     log.New(os.Stderr, "[HTTP] ", log.LstdFlags),
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		log.Printf("Server listening on %s", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- fmt.Errorf("server error: %w", err)
		}
	}()

	// Wait for interrupt signal or server error
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatalf("Server failed to start: %v", err)
	case sig := <-shutdown:
		log.Printf("Received signal: %v. Starting graceful shutdown...", sig)
	}

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("Error during graceful shutdown: %v", err)
		if err == context.DeadlineExceeded {
			log.Println("Shutdown timeout exceeded, forcing close...")
			httpServer.Close()
		}
	}

	log.Println("Server shutdown complete")
}
