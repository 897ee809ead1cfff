package server

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/husen-2346/vehical-insurance-backend/internal/domain"
	apperrors "github.com/husen-2346/vehical-insurance-backend/internal/errors"
	"github.com/husen-2346/vehical-insurance-backend/internal/metrics"
)

const bearerPrefix = "Bearer "

// requestCredentials collects every way the caller presents authorization:
// the bearer token from the Authorization header and the session ID from the
// cookie. Both feed the same predicate.
func (s *Server) requestCredentials(c echo.Context) []domain.Credential {
	var creds []domain.Credential

	if header := c.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(header, bearerPrefix) {
		creds = append(creds, domain.TokenCredential{Token: strings.TrimPrefix(header, bearerPrefix)})
	}

	if sessionID, ok := s.sessionID(c); ok {
		creds = append(creds, domain.SessionCredential{SessionID: sessionID})
	}

	return creds
}

// sessionID extracts the session ID from the cookie, if any.
func (s *Server) sessionID(c echo.Context) (uuid.UUID, bool) {
	session, err := s.sessionStore.Get(c.Request(), sessionName)
	if err != nil {
		return uuid.Nil, false
	}

	raw, ok := session.Values[sessionKeySID].(string)
	if !ok {
		return uuid.Nil, false
	}

	sessionID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}

	return sessionID, true
}

// requireAdmin gates protected routes on the authorization predicate.
func (s *Server) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ok, err := s.app.Authorize(c.Request().Context(), s.requestCredentials(c)...)
		if err != nil {
			return apperrors.InternalError("Server error", err)
		}
		if !ok {
			return apperrors.UnauthorizedError("Unauthorized")
		}
		return next(c)
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

func (s *Server) handleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("Invalid request body")
	}

	result, err := s.app.Login(c.Request().Context(), req.Username, req.Password)
	if errors.Is(err, domain.ErrInvalidCredentials) {
		metrics.AdminLoginsTotal.WithLabelValues("failure").Inc()
		return apperrors.UnauthorizedError("Invalid credentials")
	}
	if err != nil {
		return apperrors.InternalError("Server error", err)
	}

	session, err := s.sessionStore.Get(c.Request(), sessionName)
	if err != nil {
		slog.Warn("Failed to get session during login, starting fresh", "error", err)
	}
	session.Values[sessionKeySID] = result.SessionID.String()
	if err := session.Save(c.Request(), c.Response().Writer); err != nil {
		return apperrors.InternalError("Server error", err)
	}

	metrics.AdminLoginsTotal.WithLabelValues("success").Inc()

	if err := c.JSON(200, loginResponse{Success: true, Token: result.Token}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

// handleCheck answers 200 when requireAdmin lets the request through.
func (s *Server) handleCheck(c echo.Context) error {
	return c.NoContent(200)
}

// handleLogout destroys the server-side session and clears the cookie.
// It always answers 200: a failed session-store delete is logged, never
// surfaced to the caller.
func (s *Server) handleLogout(c echo.Context) error {
	if sessionID, ok := s.sessionID(c); ok {
		s.app.Logout(c.Request().Context(), sessionID)
	}

	session, err := s.sessionStore.Get(c.Request(), sessionName)
	if err != nil {
		slog.Warn("Failed to get session during logout", "error", err)
		session, err = s.sessionStore.New(c.Request(), sessionName)
		if err != nil {
			slog.Error("Failed to create new session during logout", "error", err)
			return c.NoContent(200)
		}
	}
	session.Options.MaxAge = -1
	if err := session.Save(c.Request(), c.Response().Writer); err != nil {
		slog.Error("Failed to clear session cookie", "error", err)
	}

	return c.NoContent(200)
}
