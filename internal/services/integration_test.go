package services_test

import (
	"os"
	"testing"

	"github.com/localnerve/projectsdb/data"
	"github.com/localnerve/projectsdb/internal/config"
	"github.com/localnerve/projectsdb/internal/database"
	"github.com/localnerve/projectsdb/internal/models"
	"github.com/localnerve/projectsdb/internal/services"
	"github.com/localnerve/projectsdb/internal/testutil"
	"github.com/localnerve/projectsdb/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProvisioningAgainstServerDatabase provisions the seeded catalog in a real MariaDB or PostgreSQL
func TestProvisioningAgainstServerDatabase(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tc, err := testutil.CreateTestContainers(t, testutil.ContainerOptions{})
	require.NoError(t, err)
	defer tc.Terminate(t)

	dbType := os.Getenv("DB_TYPE")
	if dbType == "" {
		dbType = "mariadb"
	}
	cfg := &config.Config{
		DBType:               dbType,
		DBHost:               tc.DBHost,
		DBPort:               tc.DBPort,
		DBAppDatabase:        "projectsdb",
		DBAppUser:            "projectsdb_app",
		DBAppPassword:        "app-password",
		DBAppConnectionLimit: 5,
	}

	db, err := database.Connect(cfg)
	require.NoError(t, err)
	defer database.Close(db)

	require.NoError(t, database.AutoMigrate(db))

	catalog, err := data.DefaultCatalog()
	require.NoError(t, err)

	seeded, err := services.SeedTemplates(db, catalog)
	require.NoError(t, err)
	assert.Equal(t, 5, seeded.Created)

	result, err := services.ProvisionProject(db, services.ProjectInput{
		Name:            "Acme Launch",
		Type:            "General",
		CreatorUserID:   1,
		UseAllTemplates: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, result.Links)
	assert.Equal(t, 44, result.Phases)
	assert.Equal(t, 189, result.Tasks)

	detail, err := services.GetProjectDetail(db, result.Project.ProjectID)
	require.NoError(t, err)
	require.Len(t, detail.Phases, 44)
	for i := 1; i < len(detail.Phases); i++ {
		assert.LessOrEqual(t, detail.Phases[i-1].PhaseOrder, detail.Phases[i].PhaseOrder)
	}

	user := testutil.CreateUser(t, db, "Dana", "dana@example.com", models.RoleMember)
	task := detail.Phases[0].Tasks[0]
	_, err = services.AssignUser(db, detail.ProjectID, task.PhaseID, task.TaskID, user.UserID)
	require.NoError(t, err)

	// The second assignment is rejected by the server's unique key or the pre-check
	_, err = services.AssignUser(db, detail.ProjectID, task.PhaseID, task.TaskID, user.UserID)
	assert.ErrorIs(t, err, types.ErrDuplicate)
}
