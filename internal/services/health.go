package services

import (
	"context"
	"log"

	"unichip/internal/database"

	"gorm.io/gorm"
)

// HealthResult is the liveness report
type HealthResult struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Database string `json:"database"`
}

// HealthService implements the health service
type HealthService struct {
	db      *gorm.DB
	service string
}

// NewHealthService creates a new health service
func NewHealthService(db *gorm.DB, service string) *HealthService {
	return &HealthService{db: db, service: service}
}

// Check reports liveness. A down store is reported but does not fail the
// check: search and intake degrade on their own.
func (s *HealthService) Check(ctx context.Context) *HealthResult {
	dbStatus := "ok"
	if err := database.Ping(ctx, s.db); err != nil {
		log.Printf("[API] Health check: database unavailable: %v", err)
		dbStatus = "unavailable"
	}
	return &HealthResult{
		Status:   "ok",
		Service:  s.service,
		Database: dbStatus,
	}
}
