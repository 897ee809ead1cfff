package server

import (
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/husen-2346/vehical-insurance-backend/internal/app"
	"github.com/husen-2346/vehical-insurance-backend/internal/domain"
	apperrors "github.com/husen-2346/vehical-insurance-backend/internal/errors"
	"github.com/husen-2346/vehical-insurance-backend/internal/metrics"
)

const missingFieldsMessage = "All fields except registration number are required"

type submitRequest struct {
	Name               string `json:"name"`
	Phone              string `json:"phone"`
	Email              string `json:"email"`
	VehicleType        string `json:"vehicle_type"`
	Make               string `json:"make"`
	Model              string `json:"model"`
	Year               string `json:"year"`
	RegistrationNumber string `json:"registration_number"`
}

type submitResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

func (s *Server) handleApply(c echo.Context) error {
	var req submitRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("Invalid request body")
	}

	id, err := s.app.SubmitApplication(c.Request().Context(), app.SubmitRequest{
		Name:               req.Name,
		Phone:              req.Phone,
		Email:              req.Email,
		VehicleType:        req.VehicleType,
		Make:               req.Make,
		Model:              req.Model,
		Year:               req.Year,
		RegistrationNumber: req.RegistrationNumber,
	})
	if errors.Is(err, domain.ErrMissingFields) {
		return apperrors.ValidationError(missingFieldsMessage)
	}
	if err != nil {
		return apperrors.InternalError("Server error", err)
	}

	metrics.ApplicationsSubmittedTotal.Inc()

	if err := c.JSON(200, submitResponse{Success: true, ID: id.String()}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}
