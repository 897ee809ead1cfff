package database

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/husen-2346/vehical-insurance-backend/internal/domain"
)

func testApplication(createdAt time.Time) *domain.Application {
	return &domain.Application{
		Name:               "Jane Doe",
		Phone:              "555-0100",
		Email:              "jane@example.com",
		VehicleType:        "car",
		Make:               "Honda",
		Model:              "Civic",
		Year:               "2021",
		RegistrationNumber: "KA-01-AB-1234",
		CreatedAt:          createdAt,
	}
}

func TestApplicationInsert(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewApplicationRepo(pool)
	ctx := context.Background()

	now := time.Now().UTC()
	id, err := repo.Insert(ctx, testApplication(now))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	apps, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, apps, 1)

	stored := apps[0]
	assert.Equal(t, id, stored.ID)
	assert.Equal(t, "Jane Doe", stored.Name)
	assert.Equal(t, "555-0100", stored.Phone)
	assert.Equal(t, "jane@example.com", stored.Email)
	assert.Equal(t, "car", stored.VehicleType)
	assert.Equal(t, "Honda", stored.Make)
	assert.Equal(t, "Civic", stored.Model)
	assert.Equal(t, "2021", stored.Year)
	assert.Equal(t, "KA-01-AB-1234", stored.RegistrationNumber)
	assert.WithinDuration(t, now, stored.CreatedAt, time.Second)
}

func TestApplicationInsert_WithoutRegistrationNumber(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewApplicationRepo(pool)
	ctx := context.Background()

	app := testApplication(time.Now().UTC())
	app.RegistrationNumber = ""

	id, err := repo.Insert(ctx, app)
	require.NoError(t, err)

	// Stored as NULL, read back as empty string.
	var regNumber *string
	err = pool.QueryRow(ctx, "SELECT registration_number FROM applications WHERE id = $1", id).Scan(&regNumber)
	require.NoError(t, err)
	assert.Nil(t, regNumber)

	apps, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Empty(t, apps[0].RegistrationNumber)
}

func TestApplicationInsert_DuplicatesPermitted(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewApplicationRepo(pool)
	ctx := context.Background()

	now := time.Now().UTC()
	id1, err := repo.Insert(ctx, testApplication(now))
	require.NoError(t, err)
	id2, err := repo.Insert(ctx, testApplication(now))
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2)

	apps, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, apps, 2)
}

func TestApplicationListAll_OrderedMostRecentFirst(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewApplicationRepo(pool)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	for i, name := range []string{"first", "second", "third"} {
		app := testApplication(base.Add(time.Duration(i) * time.Minute))
		app.Name = name
		_, err := repo.Insert(ctx, app)
		require.NoError(t, err)
	}

	apps, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, apps, 3)

	assert.Equal(t, "third", apps[0].Name)
	assert.Equal(t, "second", apps[1].Name)
	assert.Equal(t, "first", apps[2].Name)
}

func TestApplicationListAll_Empty(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewApplicationRepo(pool)

	apps, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, apps)
}
