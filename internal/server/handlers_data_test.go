package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/husen-2346/vehical-insurance-backend/internal/domain"
)

func authorizedService(apps []domain.Application, listErr error) *mockIntake {
	return &mockIntake{
		authorizeFn: func(ctx context.Context, creds ...domain.Credential) (bool, error) {
			return true, nil
		},
		listFn: func(ctx context.Context) ([]domain.Application, error) {
			return apps, listErr
		},
	}
}

func TestHandleData_ReturnsApplications(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	newer := domain.Application{
		ID:                 uuid.New(),
		Name:               "Jane Doe",
		Phone:              "555-0100",
		Email:              "jane@example.com",
		VehicleType:        "car",
		Make:               "Honda",
		Model:              "Civic",
		Year:               "2021",
		RegistrationNumber: "KA-01-AB-1234",
		CreatedAt:          now,
	}
	older := domain.Application{
		ID:          uuid.New(),
		Name:        "John Roe",
		Phone:       "555-0101",
		Email:       "john@example.com",
		VehicleType: "bike",
		Make:        "Yamaha",
		Model:       "FZ",
		Year:        "2019",
		CreatedAt:   now.Add(-time.Hour),
	}
	srv := newTestServer(t, authorizedService([]domain.Application{newer, older}, nil))

	rec := serve(srv, getRequest("/admin/data"))

	assert.Equal(t, http.StatusOK, rec.Code)

	var records []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	require.Len(t, records, 2)

	// Listing order is preserved, most recent first.
	assert.Equal(t, "Jane Doe", records[0]["name"])
	assert.Equal(t, "John Roe", records[1]["name"])

	// The native identifier is mirrored under the generic id key.
	assert.Equal(t, newer.ID.String(), records[0]["application_id"])
	assert.Equal(t, newer.ID.String(), records[0]["id"])

	assert.Equal(t, "KA-01-AB-1234", records[0]["registration_number"])
	_, hasRegNumber := records[1]["registration_number"]
	assert.False(t, hasRegNumber, "empty registration number is omitted")
}

func TestHandleData_EmptyStore(t *testing.T) {
	srv := newTestServer(t, authorizedService(nil, nil))

	rec := serve(srv, getRequest("/admin/data"))

	assert.Equal(t, http.StatusOK, rec.Code)
	// An empty listing is an empty array, never null.
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandleData_Unauthorized(t *testing.T) {
	var listCalled bool
	svc := &mockIntake{
		listFn: func(ctx context.Context) ([]domain.Application, error) {
			listCalled = true
			return nil, nil
		},
	}
	srv := newTestServer(t, svc)

	rec := serve(srv, getRequest("/admin/data"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, listCalled)
}

func TestHandleData_StorageFailure(t *testing.T) {
	srv := newTestServer(t, authorizedService(nil, errors.New("connection refused")))

	rec := serve(srv, getRequest("/admin/data"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Server error", resp.Message)
}
