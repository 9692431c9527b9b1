package configuration

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/GoArtifactDepot/GoArtifactDepot/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	// Migrate the schema
	err = db.AutoMigrate(&models.Configuration{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

// seedConfigurations inserts test data into the database.
func seedConfigurations(t *testing.T, db *gorm.DB, entries []models.Configuration) {
	t.Helper()
	for _, entry := range entries {
		err := db.Create(&entry).Error
		require.NoError(t, err, "failed to seed test data")
	}
}

func TestGet(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name             string
		dbParam          *gorm.DB
		entryName        string
		seedData         []models.Configuration
		expectedError    error
		expectedDocument []byte
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			entryName:     "test",
			expectedError: ErrDBNil,
		},
		{
			name:          "empty name",
			dbParam:       db,
			entryName:     "",
			expectedError: ErrConfigurationNameEmpty,
		},
		{
			name:          "configuration not found",
			dbParam:       db,
			entryName:     "nonexistent",
			expectedError: ErrConfigurationNotFound,
		},
		{
			name:      "successful get",
			dbParam:   db,
			entryName: "shared-configuration",
			seedData: []models.Configuration{
				{Name: "shared-configuration", Document: []byte(`{"ldap":{}}`)},
			},
			expectedDocument: []byte(`{"ldap":{}}`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Clean database for each test
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM configurations")
			}

			if tc.seedData != nil {
				seedConfigurations(t, tc.dbParam, tc.seedData)
			}

			entry, err := Get(tc.dbParam, tc.entryName)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, entry)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, entry)
				assert.Equal(t, tc.entryName, entry.Name)
				assert.Equal(t, tc.expectedDocument, entry.Document)
			}
		})
	}
}

func TestCreate(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		entryName     string
		entryDocument []byte
		seedData      []models.Configuration
		expectedError error
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			entryName:     "test",
			entryDocument: []byte("{}"),
			expectedError: ErrDBNil,
		},
		{
			name:          "empty name",
			dbParam:       db,
			entryName:     "",
			entryDocument: []byte("{}"),
			expectedError: ErrConfigurationNameEmpty,
		},
		{
			name:          "successful create",
			dbParam:       db,
			entryName:     "shared-configuration",
			entryDocument: []byte(`{"registry":{}}`),
		},
		{
			name:          "duplicate configuration",
			dbParam:       db,
			entryName:     "shared-configuration",
			entryDocument: []byte(`{"registry":{}}`),
			seedData: []models.Configuration{
				{Name: "shared-configuration", Document: []byte("{}")},
			},
			expectedError: ErrConfigurationAlreadyExists,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM configurations")
			}

			if tc.seedData != nil {
				seedConfigurations(t, tc.dbParam, tc.seedData)
			}

			entry, err := Create(tc.dbParam, tc.entryName, tc.entryDocument)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, entry)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, entry)
				assert.Equal(t, tc.entryName, entry.Name)
				assert.Equal(t, tc.entryDocument, entry.Document)
				assert.NotZero(t, entry.ID)
			}
		})
	}
}

func TestSet(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		entryName     string
		entryDocument []byte
		seedData      []models.Configuration
		expectedError error
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			entryName:     "test",
			entryDocument: []byte("{}"),
			expectedError: ErrDBNil,
		},
		{
			name:          "empty name",
			dbParam:       db,
			entryName:     "",
			entryDocument: []byte("{}"),
			expectedError: ErrConfigurationNameEmpty,
		},
		{
			name:          "create new configuration",
			dbParam:       db,
			entryName:     "shared-configuration",
			entryDocument: []byte(`{"statistics":{}}`),
		},
		{
			name:          "update existing configuration",
			dbParam:       db,
			entryName:     "shared-configuration",
			entryDocument: []byte(`{"statistics":{"enabled":false}}`),
			seedData: []models.Configuration{
				{Name: "shared-configuration", Document: []byte(`{"statistics":{}}`)},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM configurations")
			}

			if tc.seedData != nil {
				seedConfigurations(t, tc.dbParam, tc.seedData)
			}

			entry, err := Set(tc.dbParam, tc.entryName, tc.entryDocument)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, entry)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, entry)
				assert.Equal(t, tc.entryName, entry.Name)
				assert.Equal(t, tc.entryDocument, entry.Document)

				// Verify the document was created or updated in the database
				var dbEntry models.Configuration
				err = tc.dbParam.Where("name = ?", tc.entryName).First(&dbEntry).Error
				require.NoError(t, err)
				assert.Equal(t, tc.entryDocument, dbEntry.Document)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		entryName     string
		seedData      []models.Configuration
		expectedError error
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			entryName:     "test",
			expectedError: ErrDBNil,
		},
		{
			name:          "empty name",
			dbParam:       db,
			entryName:     "",
			expectedError: ErrConfigurationNameEmpty,
		},
		{
			name:          "configuration not found",
			dbParam:       db,
			entryName:     "nonexistent",
			expectedError: ErrConfigurationNotFound,
		},
		{
			name:      "successful delete",
			dbParam:   db,
			entryName: "shared-configuration",
			seedData: []models.Configuration{
				{Name: "shared-configuration", Document: []byte("{}")},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM configurations")
			}

			if tc.seedData != nil {
				seedConfigurations(t, tc.dbParam, tc.seedData)
			}

			err := Delete(tc.dbParam, tc.entryName)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)

				// Verify the document was deleted
				var count int64
				tc.dbParam.Model(&models.Configuration{}).Where("name = ?", tc.entryName).Count(&count)
				assert.Zero(t, count)
			}
		})
	}
}

func TestIntegration(t *testing.T) {
	db := setupTestDB(t)

	// Create a configuration document
	entry, err := Create(db, "shared-configuration", []byte(`{"ldap":{"enabled":false}}`))
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "shared-configuration", entry.Name)

	// Get the document by name
	retrieved, err := Get(db, "shared-configuration")
	require.NoError(t, err)
	assert.Equal(t, entry.ID, retrieved.ID)
	assert.Equal(t, []byte(`{"ldap":{"enabled":false}}`), retrieved.Document)

	// Test Set (upsert) on the existing document
	upserted, err := Set(db, "shared-configuration", []byte(`{"ldap":{"enabled":true}}`))
	require.NoError(t, err)
	assert.Equal(t, entry.ID, upserted.ID)
	assert.Equal(t, []byte(`{"ldap":{"enabled":true}}`), upserted.Document)

	// Test Set (upsert) on a new document
	newEntry, err := Set(db, "backup-configuration", []byte("{}"))
	require.NoError(t, err)
	assert.Equal(t, "backup-configuration", newEntry.Name)

	// Delete by name
	err = Delete(db, "shared-configuration")
	require.NoError(t, err)

	// Verify deletion
	_, err = Get(db, "shared-configuration")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrConfigurationNotFound)
}
