package services

import (
	"context"
	"errors"
	"log"
	"time"

	"unichip/internal/domain"
	"unichip/internal/metrics"
	"unichip/internal/session"
	"unichip/internal/util"

	"gorm.io/gorm"
)

// dummyHash keeps the cost of a login for an unknown user close to a real one
const dummyHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z9cuVJ9/ZxCo1TkO3Rgy.PCi"

// Principal is an authenticated admin session
type Principal struct {
	Username  string
	SessionID string
	ExpiresAt time.Time
}

// requireAdmin is the authorization gate in front of every admin operation
func requireAdmin(p *Principal) error {
	if p == nil || p.Username == "" || !time.Now().Before(p.ExpiresAt) {
		return unauthorized("unauthorized")
	}
	return nil
}

// CredentialVerifier checks an admin username/password pair
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) bool
}

// UserCredentialVerifier checks credentials against bcrypt hashes in the users table
type UserCredentialVerifier struct {
	db *gorm.DB
}

// NewUserCredentialVerifier creates a verifier backed by the users table
func NewUserCredentialVerifier(db *gorm.DB) *UserCredentialVerifier {
	return &UserCredentialVerifier{db: db}
}

func (v *UserCredentialVerifier) Verify(ctx context.Context, username, password string) bool {
	var user domain.User
	if err := v.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[AUTH] Verify failed: database error for user '%s': %v", username, err)
		}
		util.CheckPasswordHash(password, dummyHash)
		return false
	}

	if !util.CheckPasswordHash(password, user.HashedPassword) || !user.IsActive {
		return false
	}

	now := time.Now().UTC()
	if err := v.db.WithContext(ctx).Model(&user).Update("last_login", &now).Error; err != nil {
		log.Printf("[AUTH] Warning: failed to record last login for '%s': %v", username, err)
	}
	return true
}

// LoginResult is returned to API callers after a successful login
type LoginResult struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// AuthService issues, checks and revokes admin sessions
type AuthService struct {
	verifier    CredentialVerifier
	tokens      *util.TokenIssuer
	revocations session.RevocationStore
}

// NewAuthService creates a new auth service
func NewAuthService(verifier CredentialVerifier, tokens *util.TokenIssuer, revocations session.RevocationStore) *AuthService {
	return &AuthService{
		verifier:    verifier,
		tokens:      tokens,
		revocations: revocations,
	}
}

// Login verifies credentials and opens a session
func (s *AuthService) Login(ctx context.Context, f Fields) (*LoginResult, error) {
	username, password, errs := ValidateLogin(f)
	if len(errs) > 0 {
		return nil, validationFailed("form validation failed", errs)
	}

	log.Printf("[AUTH] Login attempt for user: %s", username)

	if !s.verifier.Verify(ctx, username, password) {
		log.Printf("[AUTH] Login failed for user '%s'", username)
		metrics.RecordAuthAttempt(false)
		return nil, unauthorized("incorrect username or password")
	}

	token, claims, err := s.tokens.GenerateSessionToken(username)
	if err != nil {
		log.Printf("[AUTH] Login failed: token generation error for user '%s': %v", username, err)
		return nil, err
	}

	log.Printf("[AUTH] Login successful for user '%s'", username)
	metrics.RecordAuthAttempt(true)

	return &LoginResult{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   claims.ExpiresAt.Time,
	}, nil
}

// Authenticate resolves a session token into a principal
func (s *AuthService) Authenticate(ctx context.Context, token string) (*Principal, error) {
	if token == "" {
		return nil, unauthorized("unauthorized")
	}

	claims, err := s.tokens.ValidateSessionToken(token)
	if err != nil {
		return nil, unauthorized("invalid or expired session")
	}

	revoked, err := s.revocations.IsRevoked(ctx, claims.ID)
	if err != nil {
		log.Printf("[AUTH] Revocation check failed for session %s: %v", claims.ID, err)
		return nil, unauthorized("unable to verify session")
	}
	if revoked {
		return nil, unauthorized("session has been logged out")
	}

	return &Principal{
		Username:  claims.Subject,
		SessionID: claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Logout revokes the principal's session until it would have expired
func (s *AuthService) Logout(ctx context.Context, p *Principal) error {
	if p == nil {
		return nil
	}
	log.Printf("[AUTH] Logout for user: %s", p.Username)
	return s.revocations.Revoke(ctx, p.SessionID, p.ExpiresAt)
}

// IssueCSRFToken returns a fresh form token
func (s *AuthService) IssueCSRFToken() (string, error) {
	return s.tokens.GenerateCSRFToken()
}

// VerifyCSRFToken lets the auth service act as the normalizer's token checker
func (s *AuthService) VerifyCSRFToken(token string) bool {
	return s.tokens.VerifyCSRFToken(token)
}
