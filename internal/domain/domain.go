package domain

import (
	"time"

	"github.com/google/uuid"
)

// Application is one vehicle-insurance intake record. All fields except
// RegistrationNumber are required at creation; records are never updated or
// deleted afterwards.
type Application struct {
	ID                 uuid.UUID
	Name               string
	Phone              string
	Email              string
	VehicleType        string
	Make               string
	Model              string
	Year               string
	RegistrationNumber string
	CreatedAt          time.Time
}

// Admin is one administrator credential record.
// Passwords are stored plaintext. That matches the deployed behavior this
// service replaces and is a recorded policy decision, not an oversight.
type Admin struct {
	ID       uuid.UUID
	Username string
	Password string
}
