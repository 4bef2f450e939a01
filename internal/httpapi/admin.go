package httpapi

import (
	"context"
	"net/http"
	"time"

	"unichip/gen/cc"
	"unichip/gen/chip"
	"unichip/gen/settings"
	"unichip/internal/domain"
	"unichip/internal/services"

	"goa.design/goa/v3/security"
)

// Dashboard is the admin landing data
type Dashboard struct {
	Chips          []domain.Chip        `json:"chips"`
	EmailRecipient string               `json:"email_recipient"`
	CC             []domain.RecipientCC `json:"cc"`
}

// requireSession authenticates an admin request before its body is read.
// A cookie session is handed to the generated decoders as a bearer token.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, fromHeader := s.sessionCredential(r)
		p, err := s.svc.Auth.Authenticate(r.Context(), token)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}

		ctx := context.WithValue(r.Context(), principalKey, p)
		ctx = context.WithValue(ctx, headerSessionKey, fromHeader)
		r = r.WithContext(ctx)
		if !fromHeader {
			r.Header = r.Header.Clone()
			r.Header.Set("Authorization", "Bearer "+token)
		}
		next.ServeHTTP(w, r)
	})
}

// sessionAuth implements the JWT security scheme of the admin services
type sessionAuth struct {
	auth *services.AuthService
}

// JWTAuth reuses the principal resolved by requireSession and authenticates
// the token otherwise
func (a sessionAuth) JWTAuth(ctx context.Context, token string, _ *security.JWTScheme) (context.Context, error) {
	if principal(ctx) != nil {
		return ctx, nil
	}
	p, err := a.auth.Authenticate(ctx, token)
	if err != nil {
		return ctx, err
	}
	return context.WithValue(ctx, principalKey, p), nil
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	p, err := s.svc.Auth.Authenticate(r.Context(), s.sessionToken(r))
	if err != nil {
		if !wantsJSON(r) {
			http.Redirect(w, r, loginPath, http.StatusSeeOther)
			return
		}
		writeError(r.Context(), w, err)
		return
	}

	chips, err := s.svc.Chips.List(r.Context(), p)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	current, err := s.svc.Settings.EmailSettings(r.Context(), p)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, Dashboard{
		Chips:          chips,
		EmailRecipient: current.EmailRecipient,
		CC:             current.CC,
	})
}

// chipEndpoints implements the chip service
type chipEndpoints struct {
	sessionAuth
	chips *services.ChipService
}

func (c *chipEndpoints) List(ctx context.Context, _ *chip.ListPayload) ([]*chip.Chip, error) {
	list, err := c.chips.List(ctx, principal(ctx))
	if err != nil {
		return nil, err
	}
	res := make([]*chip.Chip, len(list))
	for i := range list {
		res[i] = chipResult(&list[i])
	}
	return res, nil
}

func (c *chipEndpoints) Get(ctx context.Context, p *chip.GetPayload) (*chip.Chip, error) {
	id, err := parseID(p.ID, "chip")
	if err != nil {
		return nil, err
	}
	found, err := c.chips.Get(ctx, principal(ctx), id)
	if err != nil {
		return nil, err
	}
	return chipResult(found), nil
}

func (c *chipEndpoints) Add(ctx context.Context, p *chip.ChipForm) (*chip.ChipMutation, error) {
	added, err := c.chips.Add(ctx, principal(ctx), chipFields(p.Model, p.Description, p.Stock, p.Price))
	if err != nil {
		return nil, err
	}
	return &chip.ChipMutation{Message: "chip added", Chip: chipResult(added)}, nil
}

func (c *chipEndpoints) Update(ctx context.Context, p *chip.UpdatePayload) (*chip.ChipMutation, error) {
	id, err := parseID(p.ID, "chip")
	if err != nil {
		return nil, err
	}
	updated, err := c.chips.Update(ctx, principal(ctx), id, chipFields(p.Model, p.Description, p.Stock, p.Price))
	if err != nil {
		return nil, err
	}
	return &chip.ChipMutation{Message: "chip updated", Chip: chipResult(updated)}, nil
}

func (c *chipEndpoints) Delete(ctx context.Context, p *chip.DeletePayload) (*chip.Acknowledgement, error) {
	id, err := parseID(p.ID, "chip")
	if err != nil {
		return nil, err
	}
	if err := c.chips.Delete(ctx, principal(ctx), id); err != nil {
		return nil, err
	}
	return &chip.Acknowledgement{Message: "chip deleted"}, nil
}

func chipFields(model, description, stock, price *string) services.Fields {
	return fieldsOf(map[string]*string{
		"model":       model,
		"description": description,
		"stock":       stock,
		"price":       price,
	})
}

func chipResult(c *domain.Chip) *chip.Chip {
	return &chip.Chip{
		ID:          c.ID,
		Model:       c.Model,
		Description: c.Description,
		Stock:       c.Stock,
		Price:       c.Price,
	}
}

// settingsEndpoints implements the settings service
type settingsEndpoints struct {
	sessionAuth
	settings *services.SettingsService
}

func (e *settingsEndpoints) Show(ctx context.Context, _ *settings.ShowPayload) (*settings.EmailSettings, error) {
	current, err := e.settings.EmailSettings(ctx, principal(ctx))
	if err != nil {
		return nil, err
	}
	res := &settings.EmailSettings{
		EmailRecipient: current.EmailRecipient,
		Cc:             make([]*settings.RecipientCC, len(current.CC)),
	}
	for i, row := range current.CC {
		res.Cc[i] = &settings.RecipientCC{
			ID:        row.ID,
			Email:     row.Email,
			IsActive:  row.IsActive,
			CreatedAt: formatTime(row.CreatedAt),
		}
	}
	return res, nil
}

func (e *settingsEndpoints) Update(ctx context.Context, p *settings.UpdatePayload) (*settings.EmailSettingsUpdate, error) {
	result, err := e.settings.UpdateEmailSettings(ctx, principal(ctx), fieldsOf(map[string]*string{
		"email":    p.Email,
		"cc_email": p.CcEmail,
	}))
	if err != nil {
		return nil, err
	}
	return &settings.EmailSettingsUpdate{
		Message:        "email settings updated",
		EmailRecipient: result.EmailRecipient,
		AddedCc:        result.AddedCC,
	}, nil
}

// ccEndpoints implements the cc service
type ccEndpoints struct {
	sessionAuth
	settings *services.SettingsService
}

func (e *ccEndpoints) List(ctx context.Context, _ *cc.ListPayload) (*cc.CCList, error) {
	rows, err := e.settings.ListCC(ctx, principal(ctx))
	if err != nil {
		return nil, err
	}
	res := &cc.CCList{CcEmails: make([]*cc.RecipientCC, len(rows))}
	for i := range rows {
		res.CcEmails[i] = ccResult(&rows[i])
	}
	return res, nil
}

func (e *ccEndpoints) Add(ctx context.Context, p *cc.AddPayload) (*cc.CCMutation, error) {
	row, err := e.settings.AddCC(ctx, principal(ctx), fieldsOf(map[string]*string{"email": p.Email}))
	if err != nil {
		return nil, err
	}
	return &cc.CCMutation{Message: "cc email added", Cc: ccResult(row)}, nil
}

func (e *ccEndpoints) Update(ctx context.Context, p *cc.UpdatePayload) (*cc.CCMutation, error) {
	id, err := parseID(p.ID, "cc email")
	if err != nil {
		return nil, err
	}
	row, err := e.settings.UpdateCC(ctx, principal(ctx), id, fieldsOf(map[string]*string{"is_active": p.IsActive}))
	if err != nil {
		return nil, err
	}
	return &cc.CCMutation{Message: "cc email updated", Cc: ccResult(row)}, nil
}

func (e *ccEndpoints) Delete(ctx context.Context, p *cc.DeletePayload) (*cc.CCMutation, error) {
	id, err := parseID(p.ID, "cc email")
	if err != nil {
		return nil, err
	}
	row, err := e.settings.DeleteCC(ctx, principal(ctx), id)
	if err != nil {
		return nil, err
	}
	return &cc.CCMutation{Message: "cc email deleted", Cc: ccResult(row)}, nil
}

func ccResult(row *domain.RecipientCC) *cc.RecipientCC {
	return &cc.RecipientCC{
		ID:        row.ID,
		Email:     row.Email,
		IsActive:  row.IsActive,
		CreatedAt: formatTime(row.CreatedAt),
	}
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}
