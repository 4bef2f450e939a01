package httpapi

import (
	"context"
	"net/http"

	"unichip/gen/catalog"
	"unichip/gen/contact"
	"unichip/gen/health"
	"unichip/internal/services"
)

// healthEndpoints implements the health service
type healthEndpoints struct {
	health *services.HealthService
}

func (h healthEndpoints) Check(ctx context.Context) (*health.HealthResult, error) {
	r := h.health.Check(ctx)
	return &health.HealthResult{
		Status:   r.Status,
		Service:  r.Service,
		Database: r.Database,
	}, nil
}

// catalogEndpoints implements the catalog service
type catalogEndpoints struct {
	catalog *services.CatalogService
}

func (c catalogEndpoints) Search(ctx context.Context, p *catalog.SearchPayload) (*catalog.Chip, error) {
	found, err := c.catalog.Search(ctx, fieldsOf(map[string]*string{"model": p.Model}))
	if err != nil {
		return nil, err
	}
	return &catalog.Chip{
		ID:          found.ID,
		Model:       found.Model,
		Description: found.Description,
		Stock:       found.Stock,
		Price:       found.Price,
	}, nil
}

// contactEndpoints implements the contact service
type contactEndpoints struct {
	inquiries *services.InquiryService
}

func (c contactEndpoints) Submit(ctx context.Context, p *contact.SubmitPayload) (*contact.SubmitResult, error) {
	result, err := c.inquiries.Submit(ctx, fieldsOf(map[string]*string{
		"company": p.Company,
		"name":    p.Name,
		"email":   p.Email,
		"phone":   p.Phone,
		"message": p.Message,
	}))
	if err != nil {
		return nil, err
	}

	res := &contact.SubmitResult{Message: result.Message}
	if result.ID != 0 {
		id := result.ID
		res.ID = &id
	}
	return res, nil
}

func (s *Server) handleCSRFToken(w http.ResponseWriter, r *http.Request) {
	token, err := s.svc.Auth.IssueCSRFToken()
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"csrf_token": token})
}
