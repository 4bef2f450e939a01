package httpapi

import (
	"context"
	"errors"
	"mime"
	"net"
	"net/http"
	"strconv"
	"strings"

	"unichip/internal/services"
	apperrors "unichip/pkg/errors"

	goahttp "goa.design/goa/v3/http"
)

const maxBodyBytes = 1 << 20

type ctxKey int

const (
	principalKey ctxKey = iota + 1
	headerSessionKey
)

// limitBody caps every request body
func limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		}
		next.ServeHTTP(w, r)
	})
}

// readPayload decodes a JSON, urlencoded or multipart body into a normalizer payload
func readPayload(r *http.Request) (services.Payload, error) {
	p := services.Payload{
		HeaderToken: r.Header.Get("X-CSRF-Token"),
	}
	if p.HeaderToken == "" {
		p.HeaderToken = r.Header.Get("X-CSRFToken")
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/json":
		p.JSON = true
		var body map[string]any
		if err := goahttp.RequestDecoder(r).Decode(&body); err != nil {
			if tooLarge(err) {
				return p, apperrors.New(apperrors.ErrCodeBadRequest, "request body too large")
			}
			// An unreadable JSON body is an empty field set.
			body = nil
		}
		p.Body = body
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
			return p, apperrors.New(apperrors.ErrCodeBadRequest, "invalid form body")
		}
		p.Form = r.PostForm
	default:
		if err := r.ParseForm(); err != nil {
			if tooLarge(err) {
				return p, apperrors.New(apperrors.ErrCodeBadRequest, "request body too large")
			}
			return p, apperrors.New(apperrors.ErrCodeBadRequest, "invalid form body")
		}
		p.Form = r.PostForm
	}
	return p, nil
}

func tooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

// sessionCredential reads the admin session from the cookie or a bearer
// header. fromHeader is set when the bearer header supplied it.
func (s *Server) sessionCredential(r *http.Request) (token string, fromHeader bool) {
	if c, err := r.Cookie(s.cfg.Auth.CookieName); err == nil && c.Value != "" {
		return c.Value, false
	}
	if h := r.Header.Get("Authorization"); len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:]), true
	}
	return "", false
}

func (s *Server) sessionToken(r *http.Request) string {
	token, _ := s.sessionCredential(r)
	return token
}

// headerSession reports whether requireSession authenticated the request
// from its Authorization header
func headerSession(ctx context.Context) bool {
	v, _ := ctx.Value(headerSessionKey).(bool)
	return v
}

func principal(ctx context.Context) *services.Principal {
	p, _ := ctx.Value(principalKey).(*services.Principal)
	return p
}

// wantsJSON reports whether the caller is an API client rather than a browser form
func wantsJSON(r *http.Request) bool {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		return true
	}
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html")
}

// parseID reads a path id; anything but a positive integer is reported as
// the missing resource
func parseID(raw, resource string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.New(apperrors.ErrCodeNotFound, resource+" not found")
	}
	return uint(id), nil
}

// clientIP is the peer address without its port
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
