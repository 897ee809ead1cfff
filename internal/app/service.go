package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/husen-2346/vehical-insurance-backend/internal/domain"
)

// Service implements the behavior behind every route: validate and persist
// submissions, check admin credentials, evaluate the authorization predicate,
// and destroy sessions.
type Service struct {
	applications domain.ApplicationRepository
	admins       domain.AdminRepository
	sessions     domain.SessionStore
	clock        clockwork.Clock

	adminToken           string
	defaultAdminUsername string
	defaultAdminPassword string
}

func NewService(
	applications domain.ApplicationRepository,
	admins domain.AdminRepository,
	sessions domain.SessionStore,
	clock clockwork.Clock,
	adminToken, defaultAdminUsername, defaultAdminPassword string,
) *Service {
	return &Service{
		applications:         applications,
		admins:               admins,
		sessions:             sessions,
		clock:                clock,
		adminToken:           adminToken,
		defaultAdminUsername: defaultAdminUsername,
		defaultAdminPassword: defaultAdminPassword,
	}
}

// SubmitRequest carries the fields of one intake submission.
// RegistrationNumber is the only optional field.
type SubmitRequest struct {
	Name               string
	Phone              string
	Email              string
	VehicleType        string
	Make               string
	Model              string
	Year               string
	RegistrationNumber string
}

// SubmitApplication validates presence of the required fields and performs
// one durable write. No field format checks, no retries.
func (s *Service) SubmitApplication(ctx context.Context, req SubmitRequest) (uuid.UUID, error) {
	required := []string{req.Name, req.Phone, req.Email, req.VehicleType, req.Make, req.Model, req.Year}
	for _, field := range required {
		if field == "" {
			return uuid.Nil, domain.ErrMissingFields
		}
	}

	app := &domain.Application{
		Name:               req.Name,
		Phone:              req.Phone,
		Email:              req.Email,
		VehicleType:        req.VehicleType,
		Make:               req.Make,
		Model:              req.Model,
		Year:               req.Year,
		RegistrationNumber: req.RegistrationNumber,
		CreatedAt:          s.clock.Now(),
	}

	id, err := s.applications.Insert(ctx, app)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to persist application: %w", err)
	}

	slog.Info("New application submitted", "application_id", id.String(), "name", req.Name)
	return id, nil
}

// ListApplications returns all intake records, most recent first.
func (s *Service) ListApplications(ctx context.Context) ([]domain.Application, error) {
	apps, err := s.applications.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load applications: %w", err)
	}
	return apps, nil
}

// LoginResult is returned on a successful credential check.
type LoginResult struct {
	SessionID uuid.UUID
	Token     string
}

// Login verifies the username/password pair and, on success, establishes a
// fresh server-side session and hands out the shared bearer token.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if _, err := s.admins.FindByCredentials(ctx, username, password); err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to verify credentials: %w", err)
	}

	sessionID := uuid.New()
	if err := s.sessions.Activate(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("failed to establish session: %w", err)
	}

	slog.Info("Admin logged in", "username", username, "session_id", sessionID.String())
	return &LoginResult{SessionID: sessionID, Token: s.adminToken}, nil
}

// Authorize is the single predicate gating protected routes. It grants
// access if any presented credential validates: a session credential whose
// server-side admin flag is set, or a token credential equal to the shared
// bearer token. It has no side effects and does not renew session lifetime.
func (s *Service) Authorize(ctx context.Context, creds ...domain.Credential) (bool, error) {
	for _, cred := range creds {
		switch c := cred.(type) {
		case domain.SessionCredential:
			active, err := s.sessions.IsActive(ctx, c.SessionID)
			if err != nil {
				return false, fmt.Errorf("failed to check session: %w", err)
			}
			if active {
				return true, nil
			}
		case domain.TokenCredential:
			// Plain equality against a static shared secret. Observed
			// behavior of the system this replaces; revisit before any
			// multi-admin work.
			if c.Token != "" && c.Token == s.adminToken {
				return true, nil
			}
		}
	}
	return false, nil
}

// Logout destroys the server-side session unconditionally. A failing store
// delete is logged and swallowed: logout always succeeds for the caller.
func (s *Service) Logout(ctx context.Context, sessionID uuid.UUID) {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		slog.Error("Failed to destroy session", "session_id", sessionID.String(), "error", err)
	}
}

// EnsureDefaultAdmin seeds the single default admin account when the admins
// collection is empty. Idempotent; called once during process bootstrap,
// after the store is reachable.
func (s *Service) EnsureDefaultAdmin(ctx context.Context) error {
	count, err := s.admins.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	if _, err := s.admins.Create(ctx, s.defaultAdminUsername, s.defaultAdminPassword); err != nil {
		return fmt.Errorf("failed to seed default admin: %w", err)
	}

	slog.Info("Default admin created", "username", s.defaultAdminUsername)
	return nil
}
