package server

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/husen-2346/vehical-insurance-backend/internal/domain"
	apperrors "github.com/husen-2346/vehical-insurance-backend/internal/errors"
)

// applicationRecord is the listing wire shape. The store-assigned identifier
// is exposed twice: under its native application_id field and mirrored as a
// generic id for consumers that expect one.
type applicationRecord struct {
	ApplicationID      string    `json:"application_id"`
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Phone              string    `json:"phone"`
	Email              string    `json:"email"`
	VehicleType        string    `json:"vehicle_type"`
	Make               string    `json:"make"`
	Model              string    `json:"model"`
	Year               string    `json:"year"`
	RegistrationNumber string    `json:"registration_number,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

func toApplicationRecord(app domain.Application) applicationRecord {
	id := app.ID.String()
	return applicationRecord{
		ApplicationID:      id,
		ID:                 id,
		Name:               app.Name,
		Phone:              app.Phone,
		Email:              app.Email,
		VehicleType:        app.VehicleType,
		Make:               app.Make,
		Model:              app.Model,
		Year:               app.Year,
		RegistrationNumber: app.RegistrationNumber,
		CreatedAt:          app.CreatedAt,
	}
}

// handleData returns every stored application, most recent first.
// Authorization is enforced by the requireAdmin middleware on the route.
func (s *Server) handleData(c echo.Context) error {
	apps, err := s.app.ListApplications(c.Request().Context())
	if err != nil {
		return apperrors.InternalError("Server error", err)
	}

	records := make([]applicationRecord, 0, len(apps))
	for _, app := range apps {
		records = append(records, toApplicationRecord(app))
	}

	if err := c.JSON(200, records); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}
