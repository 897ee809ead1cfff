package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/husen-2346/vehical-insurance-backend/internal/app"
	"github.com/husen-2346/vehical-insurance-backend/internal/config"
	"github.com/husen-2346/vehical-insurance-backend/internal/domain"
	apperrors "github.com/husen-2346/vehical-insurance-backend/internal/errors"
)

// Session cookie settings. The name is deliberately distinct from any
// framework default so it never collides with other apps on the same host.
const (
	sessionName   = "insure.sid"
	sessionKeySID = "sid"
)

// intakeService is what the handlers need from the application layer.
type intakeService interface {
	SubmitApplication(ctx context.Context, req app.SubmitRequest) (uuid.UUID, error)
	ListApplications(ctx context.Context) ([]domain.Application, error)
	Login(ctx context.Context, username, password string) (*app.LoginResult, error)
	Authorize(ctx context.Context, creds ...domain.Credential) (bool, error)
	Logout(ctx context.Context, sessionID uuid.UUID)
}

// Pinger is the minimal health-check view of a backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	echo         *echo.Echo
	config       *config.Config
	app          intakeService
	sessionStore *sessions.CookieStore
	dbPing       Pinger
	redisPing    Pinger
	startTime    time.Time
}

func NewServer(cfg *config.Config, app intakeService, dbPing, redisPing Pinger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(metricsMiddleware)
	e.Use(apperrors.Middleware())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOriginFunc:  NewOriginChecker(cfg.Origins(), cfg.AllowedOriginSuffix, cfg.IsDevelopment()),
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.SessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   !cfg.IsDevelopment(),
		SameSite: http.SameSiteLaxMode,
	}

	srv := &Server{
		echo:         e,
		config:       cfg,
		app:          app,
		sessionStore: sessionStore,
		dbPing:       dbPing,
		redisPing:    redisPing,
		startTime:    time.Now(),
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
