package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"unichip/internal/domain"
	"unichip/internal/metrics"

	"gorm.io/gorm"
)

// EmailSettings is the notification routing shown in the admin panel
type EmailSettings struct {
	EmailRecipient string               `json:"email_recipient"`
	CC             []domain.RecipientCC `json:"cc"`
}

// EmailSettingsResult reports a primary recipient update
type EmailSettingsResult struct {
	EmailRecipient string   `json:"email_recipient"`
	AddedCC        []string `json:"added_cc,omitempty"`
}

// SettingsService manages the primary notification recipient and CC list
type SettingsService struct {
	db               *gorm.DB
	defaultRecipient string
}

// NewSettingsService creates a new settings service. defaultRecipient is
// used while no email_recipient setting is stored.
func NewSettingsService(db *gorm.DB, defaultRecipient string) *SettingsService {
	return &SettingsService{
		db:               db,
		defaultRecipient: defaultRecipient,
	}
}

// EmailSettings returns the primary recipient and every CC row
func (s *SettingsService) EmailSettings(ctx context.Context, p *Principal) (*EmailSettings, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}

	primary, err := s.primaryRecipient(ctx)
	if err != nil {
		return nil, err
	}
	cc, err := s.listCC(ctx)
	if err != nil {
		return nil, err
	}
	return &EmailSettings{EmailRecipient: primary, CC: cc}, nil
}

// UpdateEmailSettings upserts the primary recipient. A cc_email field
// carrying a comma-separated list is added to the CC list as well.
func (s *SettingsService) UpdateEmailSettings(ctx context.Context, p *Principal, f Fields) (result *EmailSettingsResult, err error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}
	defer func() { metrics.RecordAdminMutation("setting", "update", err) }()

	email, errs := ValidateEmailSetting(f)
	if len(errs) > 0 {
		return nil, validationFailed("form validation failed", errs)
	}

	log.Printf("[SETTINGS] Update email recipient: %s by %s", email, p.Username)

	result = &EmailSettingsResult{EmailRecipient: email}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var setting domain.Setting
		err := tx.Where(&domain.Setting{Key: domain.SettingEmailRecipient}).First(&setting).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			setting = domain.Setting{Key: domain.SettingEmailRecipient, Value: email}
			if err := tx.Create(&setting).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if err := tx.Model(&setting).Update("value", email).Error; err != nil {
				return err
			}
		}

		if list := f.Trimmed("cc_email"); list != "" {
			added, err := addCCList(tx, ParseCCList(list))
			if err != nil {
				return err
			}
			result.AddedCC = added
		}
		return nil
	})
	if err != nil {
		log.Printf("[SETTINGS] Update email recipient failed: database error: %v", err)
		return nil, storeUnavailable(err)
	}

	log.Printf("[SETTINGS] Email recipient updated: %s (%d cc added)", email, len(result.AddedCC))
	return result, nil
}

// ListCC returns every CC row ordered by id
func (s *SettingsService) ListCC(ctx context.Context, p *Principal) ([]domain.RecipientCC, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}
	return s.listCC(ctx)
}

// AddCC adds one active CC address. An address already on the list,
// active or not, is a conflict.
func (s *SettingsService) AddCC(ctx context.Context, p *Principal, f Fields) (cc *domain.RecipientCC, err error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}
	defer func() { metrics.RecordAdminMutation("cc", "add", err) }()

	email, errs := ValidateCCEmail(f)
	if len(errs) > 0 {
		return nil, validationFailed("form validation failed", errs)
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&domain.RecipientCC{}).Where("email = ?", email).Count(&count).Error; err != nil {
		log.Printf("[SETTINGS] Add CC failed: database error: %v", err)
		return nil, storeUnavailable(err)
	}
	if count > 0 {
		return nil, conflict("cc email already exists")
	}

	cc = &domain.RecipientCC{Email: email, IsActive: true}
	if err := s.db.WithContext(ctx).Create(cc).Error; err != nil {
		log.Printf("[SETTINGS] Add CC failed: database error: %v", err)
		return nil, storeUnavailable(err)
	}

	log.Printf("[SETTINGS] CC added: id=%d, email=%s by %s", cc.ID, cc.Email, p.Username)
	return cc, nil
}

// UpdateCC switches a CC address on or off
func (s *SettingsService) UpdateCC(ctx context.Context, p *Principal, id uint, f Fields) (cc *domain.RecipientCC, err error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}
	defer func() { metrics.RecordAdminMutation("cc", "update", err) }()

	active, errs := ValidateCCActive(f)
	if len(errs) > 0 {
		return nil, validationFailed("is_active is required", errs)
	}

	cc, err = s.findCC(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(cc).Update("is_active", active).Error; err != nil {
		log.Printf("[SETTINGS] Update CC failed: database error: %v", err)
		return nil, storeUnavailable(err)
	}
	cc.IsActive = active

	log.Printf("[SETTINGS] CC updated: id=%d, active=%t by %s", cc.ID, cc.IsActive, p.Username)
	return cc, nil
}

// DeleteCC removes a CC address permanently
func (s *SettingsService) DeleteCC(ctx context.Context, p *Principal, id uint) (cc *domain.RecipientCC, err error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}
	defer func() { metrics.RecordAdminMutation("cc", "delete", err) }()

	cc, err = s.findCC(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Delete(cc).Error; err != nil {
		log.Printf("[SETTINGS] Delete CC failed: database error: %v", err)
		return nil, storeUnavailable(err)
	}

	log.Printf("[SETTINGS] CC deleted: id=%d, email=%s by %s", cc.ID, cc.Email, p.Username)
	return cc, nil
}

// Recipients resolves the primary recipient and the active CC addresses,
// leaving out any CC equal to the primary.
func (s *SettingsService) Recipients(ctx context.Context) (string, []string, error) {
	primary, err := s.primaryRecipient(ctx)
	if err != nil {
		// Inquiries still reach the configured inbox while the store is down.
		return s.defaultRecipient, nil, nil
	}

	var rows []domain.RecipientCC
	if err := s.db.WithContext(ctx).Where("is_active = ?", true).Order("id ASC").Find(&rows).Error; err != nil {
		log.Printf("[SETTINGS] Warning: failed to load cc list: %v", err)
		return primary, nil, nil
	}

	cc := make([]string, 0, len(rows))
	seen := map[string]bool{strings.ToLower(primary): true}
	for _, row := range rows {
		key := strings.ToLower(row.Email)
		if seen[key] {
			continue
		}
		seen[key] = true
		cc = append(cc, row.Email)
	}
	return primary, cc, nil
}

func (s *SettingsService) primaryRecipient(ctx context.Context) (string, error) {
	var setting domain.Setting
	err := s.db.WithContext(ctx).Where(&domain.Setting{Key: domain.SettingEmailRecipient}).First(&setting).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return s.defaultRecipient, nil
	case err != nil:
		log.Printf("[SETTINGS] Recipient lookup failed: database error: %v", err)
		return "", storeUnavailable(err)
	}
	if setting.Value == "" {
		return s.defaultRecipient, nil
	}
	return setting.Value, nil
}

func (s *SettingsService) listCC(ctx context.Context) ([]domain.RecipientCC, error) {
	var rows []domain.RecipientCC
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		log.Printf("[SETTINGS] List CC failed: database error: %v", err)
		return nil, storeUnavailable(err)
	}
	return rows, nil
}

func (s *SettingsService) findCC(ctx context.Context, id uint) (*domain.RecipientCC, error) {
	var cc domain.RecipientCC
	if err := s.db.WithContext(ctx).First(&cc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("cc email not found")
		}
		log.Printf("[SETTINGS] CC lookup failed: database error: %v", err)
		return nil, storeUnavailable(err)
	}
	return &cc, nil
}

// addCCList inserts the addresses not already present, active or not
func addCCList(tx *gorm.DB, addrs []string) ([]string, error) {
	var added []string
	for _, addr := range addrs {
		var count int64
		if err := tx.Model(&domain.RecipientCC{}).Where("email = ?", addr).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			continue
		}
		if err := tx.Create(&domain.RecipientCC{Email: addr, IsActive: true}).Error; err != nil {
			return nil, err
		}
		added = append(added, addr)
	}
	return added, nil
}
