package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"unichip/internal/domain"
	"unichip/internal/metrics"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// CatalogService implements the public part-number search
type CatalogService struct {
	db *gorm.DB
}

// NewCatalogService creates a new catalog service
func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// Search returns the lowest-id chip whose model contains query, ignoring case
func (s *CatalogService) Search(ctx context.Context, f Fields) (*domain.Chip, error) {
	query, errs := ValidateSearch(f)
	if len(errs) > 0 {
		metrics.RecordSearch("invalid")
		return nil, validationFailed("invalid input: please enter a chip model", errs)
	}

	log.Printf("[SEARCH] Search request: model=%s", query)

	pattern := "%" + likeEscaper.Replace(query) + "%"

	var chip domain.Chip
	err := s.db.WithContext(ctx).
		Where(`model `+s.likeOperator()+` ? ESCAPE '\'`, pattern).
		Order("id ASC").
		First(&chip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			metrics.RecordSearch("not_found")
			return nil, notFound(fmt.Sprintf("no item with model containing %s", query))
		}
		log.Printf("[SEARCH] Search failed: database error: %v", err)
		metrics.RecordSearch("error")
		return nil, storeUnavailable(err)
	}

	metrics.RecordSearch("found")
	return &chip, nil
}

// likeOperator is the store's case-insensitive LIKE. Column and pattern are
// folded by the store alike: ASCII only on SQLite, Unicode on PostgreSQL.
func (s *CatalogService) likeOperator() string {
	if s.db.Dialector.Name() == "postgres" {
		return "ILIKE"
	}
	return "LIKE"
}
