package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-frontdesk/internal/models"
)

func TestOpenSQLiteAndMigrate(t *testing.T) {
	db, err := Open(DriverSQLite, ":memory:")
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	assert.True(t, db.Migrator().HasTable(&models.Account{}))
	assert.True(t, db.Migrator().HasTable(&models.AccessRequest{}))
	assert.True(t, db.Migrator().HasTable(&models.AuditLog{}))
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open("oracle", "whatever")
	assert.Error(t, err)
}
