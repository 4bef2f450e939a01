package services

import (
	"context"
	"errors"
	"log"

	"unichip/internal/database"
	"unichip/internal/domain"
	"unichip/internal/metrics"

	"gorm.io/gorm"
)

// ChipService implements admin inventory management
type ChipService struct {
	db *gorm.DB
}

// NewChipService creates a new chip service
func NewChipService(db *gorm.DB) *ChipService {
	return &ChipService{db: db}
}

// List returns every chip ordered by id
func (s *ChipService) List(ctx context.Context, p *Principal) ([]domain.Chip, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}

	var chips []domain.Chip
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&chips).Error; err != nil {
		log.Printf("[CHIP] List failed: database error: %v", err)
		return nil, storeUnavailable(err)
	}
	return chips, nil
}

// Get returns one chip
func (s *ChipService) Get(ctx context.Context, p *Principal, id uint) (*domain.Chip, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}
	return s.find(ctx, id)
}

// Add creates a chip unless its model is already in use
func (s *ChipService) Add(ctx context.Context, p *Principal, f Fields) (chip *domain.Chip, err error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}
	defer func() { metrics.RecordAdminMutation("chip", "add", err) }()

	in, errs := ValidateChip(f)
	if len(errs) > 0 {
		return nil, validationFailed("form validation failed", errs)
	}

	log.Printf("[CHIP] Add request: model=%s by %s", in.Model, p.Username)

	// Read-then-write: two concurrent adds of one model can both pass this
	// check; the unique index on model rejects the loser.
	taken, err := s.modelTaken(ctx, in.Model, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		log.Printf("[CHIP] Add failed: model '%s' already exists", in.Model)
		return nil, conflict("model already exists")
	}

	chip = &domain.Chip{
		Model:       in.Model,
		Description: in.Description,
		Stock:       in.Stock,
		Price:       in.Price,
	}
	if err := s.db.WithContext(ctx).Create(chip).Error; err != nil {
		if database.IsUniqueViolation(err) {
			log.Printf("[CHIP] Add failed: model '%s' was taken concurrently", in.Model)
			return nil, conflict("model already exists")
		}
		log.Printf("[CHIP] Add failed: database error: %v", err)
		return nil, storeUnavailable(err)
	}

	log.Printf("[CHIP] Add successful: id=%d, model=%s", chip.ID, chip.Model)
	return chip, nil
}

// Update replaces all four fields of a chip
func (s *ChipService) Update(ctx context.Context, p *Principal, id uint, f Fields) (chip *domain.Chip, err error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}
	defer func() { metrics.RecordAdminMutation("chip", "update", err) }()

	chip, err = s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	in, errs := ValidateChip(f)
	if len(errs) > 0 {
		return nil, validationFailed("form validation failed", errs)
	}

	taken, err := s.modelTaken(ctx, in.Model, id)
	if err != nil {
		return nil, err
	}
	if taken {
		log.Printf("[CHIP] Update failed: model '%s' belongs to another chip", in.Model)
		return nil, conflict("model already exists")
	}

	chip.Model = in.Model
	chip.Description = in.Description
	chip.Stock = in.Stock
	chip.Price = in.Price
	if err := s.db.WithContext(ctx).Save(chip).Error; err != nil {
		if database.IsUniqueViolation(err) {
			log.Printf("[CHIP] Update failed: model '%s' was taken concurrently", in.Model)
			return nil, conflict("model already exists")
		}
		log.Printf("[CHIP] Update failed: database error: %v", err)
		return nil, storeUnavailable(err)
	}

	log.Printf("[CHIP] Update successful: id=%d, model=%s by %s", chip.ID, chip.Model, p.Username)
	return chip, nil
}

// Delete removes a chip permanently
func (s *ChipService) Delete(ctx context.Context, p *Principal, id uint) (err error) {
	if err := requireAdmin(p); err != nil {
		return err
	}
	defer func() { metrics.RecordAdminMutation("chip", "delete", err) }()

	chip, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(chip).Error; err != nil {
		log.Printf("[CHIP] Delete failed: database error: %v", err)
		return storeUnavailable(err)
	}

	log.Printf("[CHIP] Delete successful: id=%d, model=%s by %s", chip.ID, chip.Model, p.Username)
	return nil
}

func (s *ChipService) find(ctx context.Context, id uint) (*domain.Chip, error) {
	var chip domain.Chip
	if err := s.db.WithContext(ctx).First(&chip, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("chip not found")
		}
		log.Printf("[CHIP] Lookup failed: database error: %v", err)
		return nil, storeUnavailable(err)
	}
	return &chip, nil
}

// modelTaken reports whether another chip already uses model, ignoring case.
// excludeID is the chip being updated, or 0 on add.
func (s *ChipService) modelTaken(ctx context.Context, model string, excludeID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&domain.Chip{}).
		Where("LOWER(model) = LOWER(?) AND id <> ?", model, excludeID).
		Count(&count).Error
	if err != nil {
		log.Printf("[CHIP] Model check failed: database error: %v", err)
		return false, storeUnavailable(err)
	}
	return count > 0, nil
}
