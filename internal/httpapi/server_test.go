package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	ccsvr "unichip/gen/http/cc/server"
	chipsvr "unichip/gen/http/chip/server"
	"unichip/internal/config"
	"unichip/internal/database"
	"unichip/internal/domain"
	"unichip/internal/services"
	"unichip/internal/session"
	"unichip/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type failingNotifier struct{ calls int }

func (n *failingNotifier) Send(context.Context, string, []string, string, string) error {
	n.calls++
	return errors.New("mail server unreachable")
}

type fixedVerifier struct{}

func (fixedVerifier) Verify(_ context.Context, username, password string) bool {
	return username == "admin" && password == "s3cret"
}

type testEnv struct {
	t        *testing.T
	srv      *Server
	db       *gorm.DB
	handler  http.Handler
	notifier *failingNotifier
}

type panickingRecipients struct{}

func (panickingRecipients) Recipients(context.Context) (string, []string, error) {
	panic("recipient lookup exploded")
}

// newTestEnv builds a server on an in-memory store. opts may replace
// services before the routes are mounted.
func newTestEnv(t *testing.T, opts ...func(db *gorm.DB, svc *Services)) *testEnv {
	t.Helper()
	db, err := database.Open(&config.DatabaseConfig{URL: "sqlite:///:memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	cfg := &config.Config{
		App: config.AppConfig{Name: "Unichip Catalog", Debug: true},
		Auth: config.AuthConfig{
			SecretKey:  testSecret,
			CookieName: "unichip_session",
		},
		CORS: config.CORSConfig{AllowedOrigins: []string{"*"}},
	}

	auth := services.NewAuthService(fixedVerifier{}, util.NewTokenIssuer(testSecret, time.Hour, time.Hour), session.NewMemoryStore())
	settings := services.NewSettingsService(db, "sales@unichip.hk")
	notifier := &failingNotifier{}

	svc := Services{
		Auth:      auth,
		Catalog:   services.NewCatalogService(db),
		Inquiries: services.NewInquiryService(db, notifier, settings, services.IntakePolicy{MaskFailuresForUX: true, NotifyTimeout: time.Second}),
		Chips:     services.NewChipService(db),
		Settings:  settings,
		Health:    services.NewHealthService(db, cfg.App.Name),
	}
	for _, opt := range opts {
		opt(db, &svc)
	}

	srv := New(cfg, svc)
	return &testEnv{t: t, srv: srv, db: db, handler: srv.Handler(), notifier: notifier}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) sendJSON(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(e.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return e.do(req)
}

func (e *testEnv) form(path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "text/html")
	return e.do(req)
}

func (e *testEnv) login() string {
	rec := e.sendJSON(http.MethodPost, "/admin/login", "", map[string]string{"username": "admin", "password": "s3cret"})
	require.Equal(e.t, http.StatusOK, rec.Code, rec.Body.String())
	var result services.LoginResult
	require.NoError(e.t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.NotEmpty(e.t, result.AccessToken)
	return result.AccessToken
}

func (e *testEnv) csrfToken() string {
	rec := e.do(httptest.NewRequest(http.MethodGet, "/csrf-token", nil))
	require.Equal(e.t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(e.t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["csrf_token"]
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]string](t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "Unichip Catalog", body["service"])
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestChipLifecycleEndToEnd(t *testing.T) {
	env := newTestEnv(t)
	token := env.login()

	rec := env.sendJSON(http.MethodPost, "/admin/chip/add", token, map[string]any{
		"model": "X1", "description": "d", "stock": 10, "price": 1.5,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	added := decode[chipsvr.AddResponseBody](t, rec)
	require.NotNil(t, added.Chip)
	assert.Equal(t, "chip added", added.Message)

	rec = env.sendJSON(http.MethodGet, fmt.Sprintf("/admin/chip/%d", added.Chip.ID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[domain.Chip](t, rec)
	assert.Equal(t, domain.Chip{ID: added.Chip.ID, Model: "X1", Description: "d", Stock: 10, Price: 1.5}, got)

	rec = env.sendJSON(http.MethodPost, fmt.Sprintf("/admin/chip/update/%d", got.ID), token, map[string]any{
		"model": "X2", "description": "d", "stock": 10, "price": 1.5,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = env.sendJSON(http.MethodPost, "/search", "", map[string]string{"model": "X1"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = env.sendJSON(http.MethodPost, "/search", "", map[string]string{"model": "x2"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, got.ID, decode[domain.Chip](t, rec).ID)

	rec = env.sendJSON(http.MethodPost, "/admin/chip/add", token, map[string]any{
		"model": "x2", "description": "dup", "stock": 1, "price": 1,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "CONFLICT", decode[ErrorResponse](t, rec).Code)

	rec = env.sendJSON(http.MethodPost, fmt.Sprintf("/admin/chip/delete/%d", got.ID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec = env.sendJSON(http.MethodGet, fmt.Sprintf("/admin/chip/%d", got.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddChipValidationDetails(t *testing.T) {
	env := newTestEnv(t)
	token := env.login()

	rec := env.sendJSON(http.MethodPost, "/admin/chip/add", token, map[string]any{"model": "X1", "description": "d", "stock": -1, "price": 1})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[ErrorResponse](t, rec)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	assert.Equal(t, []string{"stock: must be at least 0"}, body.Details)
}

func TestAdminRoutesRequireSession(t *testing.T) {
	env := newTestEnv(t)

	routes := []struct{ method, path string }{
		{http.MethodGet, "/admin/chips"},
		{http.MethodPost, "/admin/chip/add"},
		{http.MethodGet, "/admin/chip/1"},
		{http.MethodPost, "/admin/chip/update/1"},
		{http.MethodPost, "/admin/chip/delete/1"},
		{http.MethodGet, "/admin/settings/email"},
		{http.MethodPost, "/admin/settings/email"},
		{http.MethodGet, "/admin/email/cc"},
		{http.MethodPost, "/admin/email/cc"},
		{http.MethodPut, "/admin/email/cc/1"},
		{http.MethodDelete, "/admin/email/cc/1"},
	}
	for _, route := range routes {
		rec := env.sendJSON(route.method, route.path, "", map[string]any{"model": "X1", "description": "d", "stock": 1, "price": 1, "email": "a@b.cn"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", route.method, route.path)

		rec = env.sendJSON(route.method, route.path, "forged.token.value", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", route.method, route.path)
	}

	var count int64
	require.NoError(t, env.db.Model(&domain.Chip{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDashboardRedirectsBrowsers(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Accept", "text/html")
	rec := env.do(req)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))

	rec = env.sendJSON(http.MethodGet, "/admin", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.sendJSON(http.MethodGet, "/admin", env.login(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "sales@unichip.hk", decode[Dashboard](t, rec).EmailRecipient)
}

func TestFormLoginAndLogout(t *testing.T) {
	env := newTestEnv(t)

	rec := env.form("/admin/login", url.Values{"username": {"admin"}, "password": {"wrong"}, "csrf_token": {env.csrfToken()}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/login?error=invalid_credentials", rec.Header().Get("Location"))

	rec = env.form("/admin/login", url.Values{"username": {"admin"}, "password": {"s3cret"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "forms without a token are refused")

	rec = env.form("/admin/login", url.Values{"username": {"admin"}, "password": {"s3cret"}, "csrf_token": {env.csrfToken()}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	sessionCookie := cookies[0]
	assert.Equal(t, "unichip_session", sessionCookie.Name)
	assert.True(t, sessionCookie.HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/admin/chips", nil)
	req.AddCookie(sessionCookie)
	assert.Equal(t, http.StatusOK, env.do(req).Code)

	req = httptest.NewRequest(http.MethodGet, "/admin/logout", nil)
	req.AddCookie(sessionCookie)
	rec = env.do(req)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))

	req = httptest.NewRequest(http.MethodGet, "/admin/chips", nil)
	req.AddCookie(sessionCookie)
	assert.Equal(t, http.StatusUnauthorized, env.do(req).Code)
}

func TestSearchFormNeedsToken(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.db.Create(&domain.Chip{Model: "STM32F103C8T6", Description: "MCU", Stock: 1, Price: 1}).Error)

	rec := env.form("/search", url.Values{"model": {"f103"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.form("/search", url.Values{"model": {"f103"}, "csrf_token": {env.csrfToken()}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "STM32F103C8T6", decode[domain.Chip](t, rec).Model)

	rec = env.sendJSON(http.MethodPost, "/search", "", map[string]string{"model": " "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactAcceptsStaleFormsAndMasksNotificationFailure(t *testing.T) {
	env := newTestEnv(t)

	rec := env.form("/contact", url.Values{
		"company": {"Acme"}, "name": {"Li"}, "email": {"li@acme.test"}, "message": {"500 pcs"}, "csrf_token": {"expired"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "submission received", decode[services.SubmitResult](t, rec).Message)
	assert.Equal(t, 1, env.notifier.calls)

	rec = env.sendJSON(http.MethodPost, "/contact", "", map[string]string{"name": "Li", "email": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var count int64
	require.NoError(t, env.db.Model(&domain.Inquiry{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCCRoutes(t *testing.T) {
	env := newTestEnv(t)
	token := env.login()

	rec := env.sendJSON(http.MethodPost, "/admin/email/cc", token, map[string]string{"email": "ops@unichip.hk"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	cc := decode[ccsvr.AddResponseBody](t, rec).Cc
	require.NotNil(t, cc)
	assert.True(t, cc.IsActive)

	rec = env.sendJSON(http.MethodPost, "/admin/email/cc", token, map[string]string{"email": "ops@unichip.hk"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.sendJSON(http.MethodPut, fmt.Sprintf("/admin/email/cc/%d", cc.ID), token, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.sendJSON(http.MethodPut, fmt.Sprintf("/admin/email/cc/%d", cc.ID), token, map[string]any{"is_active": false})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.False(t, decode[ccsvr.UpdateResponseBody](t, rec).Cc.IsActive)

	rec = env.sendJSON(http.MethodDelete, fmt.Sprintf("/admin/email/cc/%d", cc.ID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = env.sendJSON(http.MethodDelete, fmt.Sprintf("/admin/email/cc/%d", cc.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.sendJSON(http.MethodGet, "/admin/email/cc", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[ccsvr.ListResponseBody](t, rec).CcEmails)
}

func TestUpdateEmailSettingsRoute(t *testing.T) {
	env := newTestEnv(t)
	token := env.login()

	rec := env.sendJSON(http.MethodPost, "/admin/settings/email", token, map[string]string{
		"email": "boss@unichip.hk", "cc_email": "a@x.com, b@y.com, not-an-email",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = env.sendJSON(http.MethodGet, "/admin/settings/email", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	settings := decode[services.EmailSettings](t, rec)
	assert.Equal(t, "boss@unichip.hk", settings.EmailRecipient)
	require.Len(t, settings.CC, 2)
	assert.Equal(t, "a@x.com", settings.CC[0].Email)
	assert.Equal(t, "b@y.com", settings.CC[1].Email)
}

func TestLoginIsThrottled(t *testing.T) {
	env := newTestEnv(t)
	env.srv.svc.LoginLimiter = session.NewMemoryLimiter(2, time.Minute)

	for i := 0; i < 2; i++ {
		rec := env.sendJSON(http.MethodPost, "/admin/login", "", map[string]string{"username": "admin", "password": "wrong"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	rec := env.sendJSON(http.MethodPost, "/admin/login", "", map[string]string{"username": "admin", "password": "s3cret"})
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "RATE_LIMITED", decode[ErrorResponse](t, rec).Code)
}

func TestBearerChipDeleteNeedsNoBody(t *testing.T) {
	env := newTestEnv(t)
	token := env.login()

	c := domain.Chip{Model: "NE555", Description: "timer", Stock: 5, Price: 0.2}
	require.NoError(t, env.db.Create(&c).Error)

	req := httptest.NewRequest(http.MethodPost, chipsvr.DeleteChipPath(fmt.Sprint(c.ID)), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := env.do(req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "chip deleted", decode[chipsvr.DeleteResponseBody](t, rec).Message)

	var count int64
	require.NoError(t, env.db.Model(&domain.Chip{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCookieSessionMutationsNeedFormToken(t *testing.T) {
	env := newTestEnv(t)
	sessionCookie := &http.Cookie{Name: "unichip_session", Value: env.login()}

	c := domain.Chip{Model: "NE555", Description: "timer", Stock: 5, Price: 0.2}
	require.NoError(t, env.db.Create(&c).Error)
	path := chipsvr.DeleteChipPath(fmt.Sprint(c.ID))

	send := func(values url.Values) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(sessionCookie)
		return env.do(req)
	}

	rec := send(url.Values{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "BAD_REQUEST", decode[ErrorResponse](t, rec).Code)

	var count int64
	require.NoError(t, env.db.Model(&domain.Chip{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	rec = send(url.Values{"csrf_token": {env.csrfToken()}})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NoError(t, env.db.Model(&domain.Chip{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestBearerSessionAcceptsFormsWithoutToken(t *testing.T) {
	env := newTestEnv(t)
	token := env.login()

	req := httptest.NewRequest(http.MethodPost, chipsvr.AddChipPath(), strings.NewReader(url.Values{
		"model": {"LM358"}, "description": {"op amp"}, "stock": {"40"}, "price": {"0.15"},
	}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+token)
	rec := env.do(req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	added := decode[chipsvr.AddResponseBody](t, rec)
	require.NotNil(t, added.Chip)
	assert.Equal(t, 40, added.Chip.Stock)
	assert.Equal(t, 0.15, added.Chip.Price)
}

func TestContactPanicIsMaskedWithOneResponse(t *testing.T) {
	env := newTestEnv(t, func(db *gorm.DB, svc *Services) {
		svc.Inquiries = services.NewInquiryService(db, &failingNotifier{}, panickingRecipients{}, services.IntakePolicy{MaskFailuresForUX: true})
	})

	rec := env.sendJSON(http.MethodPost, "/contact", "", map[string]string{"name": "Li", "email": "li@acme.test"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"submission received, we will process it"}`, rec.Body.String())

	var count int64
	require.NoError(t, env.db.Model(&domain.Inquiry{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
