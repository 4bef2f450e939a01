package httpapi

import (
	"context"
	"errors"
	"log"
	"net/http"

	apperrors "unichip/pkg/errors"

	goahttp "goa.design/goa/v3/http"
	goa "goa.design/goa/v3/pkg"
)

// ErrorResponse is the body of every failed API call
type ErrorResponse struct {
	Error   string   `json:"error"`
	Code    string   `json:"code"`
	Details []string `json:"details,omitempty"`

	status int
}

// StatusCode implements goahttp.Statuser
func (e *ErrorResponse) StatusCode() int {
	return e.status
}

// formatError maps service and transport errors onto the API error body
func formatError(ctx context.Context, err error) goahttp.Statuser {
	if appErr, ok := apperrors.As(err); ok {
		status := appErr.HTTPStatus()
		if status >= http.StatusInternalServerError {
			log.Printf("[ERROR] %v", err)
		}
		return &ErrorResponse{
			Error:   appErr.Message,
			Code:    string(appErr.Code),
			Details: appErr.Details,
			status:  status,
		}
	}

	var serr *goa.ServiceError
	if errors.As(err, &serr) && !serr.Fault {
		return &ErrorResponse{
			Error:  serr.Message,
			Code:   string(apperrors.ErrCodeBadRequest),
			status: http.StatusBadRequest,
		}
	}

	log.Printf("[ERROR] %v", err)
	return &ErrorResponse{
		Error:  "internal server error",
		Code:   string(apperrors.ErrCodeInternalError),
		status: http.StatusInternalServerError,
	}
}

// errorHandler logs responses that failed to encode
func errorHandler(ctx context.Context, w http.ResponseWriter, err error) {
	log.Printf("[ERROR] %v", err)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	enc := jsonEncoder(ctx, w)
	w.WriteHeader(status)
	if err := enc.Encode(v); err != nil {
		log.Printf("[API] Failed to encode response: %v", err)
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	resp := formatError(ctx, err)
	writeJSON(ctx, w, resp.StatusCode(), resp)
}
