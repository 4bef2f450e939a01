package httpapi

import (
	"log"
	"net/http"
	"time"

	"unichip/internal/services"
	apperrors "unichip/pkg/errors"
)

const (
	loginPath     = "/admin/login"
	dashboardPath = "/admin"
)

// LoginPage is what a login form needs to render
type LoginPage struct {
	CSRFToken string `json:"csrf_token"`
	Error     string `json:"error,omitempty"`
}

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if _, err := s.svc.Auth.Authenticate(r.Context(), s.sessionToken(r)); err == nil {
		http.Redirect(w, r, dashboardPath, http.StatusSeeOther)
		return
	}

	token, err := s.svc.Auth.IssueCSRFToken()
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, LoginPage{
		CSRFToken: token,
		Error:     r.URL.Query().Get("error"),
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	api := wantsJSON(r)

	if limiter := s.svc.LoginLimiter; limiter != nil {
		allowed, err := limiter.Allow(r.Context(), "login:"+clientIP(r))
		if err != nil {
			// Fail open.
			log.Printf("[AUTH] Warning: login rate limiter unavailable: %v", err)
		} else if !allowed {
			log.Printf("[AUTH] Login throttled for %s", clientIP(r))
			writeError(r.Context(), w, apperrors.New(apperrors.ErrCodeRateLimited, "too many login attempts, try again later"))
			return
		}
	}

	payload, err := readPayload(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	f, err := s.normalizer.Normalize(payload, services.PolicyStrict)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	result, err := s.svc.Auth.Login(r.Context(), f)
	if err != nil {
		if !api && (apperrors.IsUnauthorized(err) || apperrors.IsValidation(err)) {
			http.Redirect(w, r, loginPath+"?error=invalid_credentials", http.StatusSeeOther)
			return
		}
		writeError(r.Context(), w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.Auth.CookieName,
		Value:    result.AccessToken,
		Path:     "/",
		Expires:  result.ExpiresAt,
		HttpOnly: true,
		Secure:   s.cfg.Auth.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	if !api {
		http.Redirect(w, r, dashboardPath, http.StatusSeeOther)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, result)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if p, err := s.svc.Auth.Authenticate(r.Context(), s.sessionToken(r)); err == nil {
		if err := s.svc.Auth.Logout(r.Context(), p); err != nil {
			writeError(r.Context(), w, err)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.Auth.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cfg.Auth.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, loginPath, http.StatusFound)
}
