package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/husen-2346/vehical-insurance-backend/internal/app"
	"github.com/husen-2346/vehical-insurance-backend/internal/config"
	"github.com/husen-2346/vehical-insurance-backend/internal/domain"
)

const testAdminToken = "demo-admin-token"

// mockIntake implements intakeService with overridable functions.
type mockIntake struct {
	submitFn    func(ctx context.Context, req app.SubmitRequest) (uuid.UUID, error)
	listFn      func(ctx context.Context) ([]domain.Application, error)
	loginFn     func(ctx context.Context, username, password string) (*app.LoginResult, error)
	authorizeFn func(ctx context.Context, creds ...domain.Credential) (bool, error)
	logoutFn    func(ctx context.Context, sessionID uuid.UUID)
}

func (m *mockIntake) SubmitApplication(ctx context.Context, req app.SubmitRequest) (uuid.UUID, error) {
	if m.submitFn != nil {
		return m.submitFn(ctx, req)
	}
	return uuid.New(), nil
}

func (m *mockIntake) ListApplications(ctx context.Context) ([]domain.Application, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockIntake) Login(ctx context.Context, username, password string) (*app.LoginResult, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, username, password)
	}
	return nil, domain.ErrInvalidCredentials
}

func (m *mockIntake) Authorize(ctx context.Context, creds ...domain.Credential) (bool, error) {
	if m.authorizeFn != nil {
		return m.authorizeFn(ctx, creds...)
	}
	return false, nil
}

func (m *mockIntake) Logout(ctx context.Context, sessionID uuid.UUID) {
	if m.logoutFn != nil {
		m.logoutFn(ctx, sessionID)
	}
}

// stubPinger reports a fixed health-check result.
type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error {
	return p.err
}

func testConfig() *config.Config {
	return &config.Config{
		AppEnv:              "development",
		Port:                "5000",
		SessionSecret:       "test-secret",
		SessionMaxAge:       time.Hour,
		AdminToken:          testAdminToken,
		AllowedOriginSuffix: ".onrender.com",
	}
}

func newTestServer(t *testing.T, svc intakeService) *Server {
	t.Helper()
	if svc == nil {
		svc = &mockIntake{}
	}
	return NewServer(testConfig(), svc, stubPinger{}, stubPinger{})
}

func jsonRequest(method, target, body string) *http.Request {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func getRequest(target string) *http.Request {
	return httptest.NewRequest(http.MethodGet, target, nil)
}

func serve(srv *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)
	return rec
}
