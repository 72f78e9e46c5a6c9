package db

import (
	"path/filepath"
	"testing"

	"recall/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoMigrateWithoutInitialize(t *testing.T) {
	DB = nil
	err := AutoMigrate(&models.CallHistoryRow{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not initialized")
	assert.NoError(t, Close())
}

func TestInitializeLocalSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calls.db")

	require.NoError(t, Initialize(Options{Path: path, Environment: "production"}))
	t.Cleanup(func() {
		Close()
		DB = nil
	})

	require.NoError(t, AutoMigrate(&models.CallHistoryRow{}))
	assert.True(t, DB.Migrator().HasTable(models.CallHistoryTable))
}
