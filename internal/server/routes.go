package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints (no auth required)
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Public intake submission
	s.echo.POST("/apply", s.handleApply)

	// Admin routes. Logout needs no authorization: destroying a session is
	// always allowed.
	s.echo.POST("/admin/login", s.handleLogin)
	s.echo.GET("/admin/check", s.handleCheck, s.requireAdmin)
	s.echo.GET("/admin/logout", s.handleLogout)
	s.echo.GET("/admin/data", s.handleData, s.requireAdmin)
}
