// setup_test.go
//
// Agency project tracker that provisions project phases and tasks from service templates
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of projectsdb.
// projectsdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// projectsdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with projectsdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/projectsdb/internal/config"
	"github.com/localnerve/projectsdb/internal/handlers"
	"github.com/localnerve/projectsdb/internal/middleware"
	"github.com/localnerve/projectsdb/internal/models"
	"github.com/localnerve/projectsdb/internal/services"
	"github.com/localnerve/projectsdb/internal/testutil"
	"github.com/localnerve/projectsdb/internal/testutil/fakeauth"
	"gorm.io/gorm"
)

// testApp is the /api surface over an in-memory database
type testApp struct {
	app *fiber.App
	db  *gorm.DB
	cfg *config.Config
}

type appOptions struct {
	auth     *fakeauth.Authenticator
	webhooks map[string]string
}

// newTestApp mounts every route. Without an authenticator, authentication is disabled.
func newTestApp(t *testing.T, opts appOptions) *testApp {
	t.Helper()

	db := testutil.NewTestDB(t)
	cfg := &config.Config{
		DBType:               "sqlite",
		AuthDisabled:         opts.auth == nil,
		DefaultCreatorUserID: 1,
		SlackWebhooks:        opts.webhooks,
	}

	authCfg := middleware.AuthConfig{DB: db, Disabled: cfg.AuthDisabled}
	if opts.auth != nil {
		authCfg.Auth = opts.auth
	}

	app := fiber.New()
	handlers.RegisterRoutes(app.Group("/api"), handlers.Dependencies{
		Config: cfg,
		AppDB:  db,
		UserDB: db,
		Auth:   authCfg,
		Slack:  services.NewSlackNotifier(cfg),
	})

	return &testApp{app: app, db: db, cfg: cfg}
}

func (a *testApp) do(t *testing.T, req *http.Request) *http.Response {
	t.Helper()
	resp, err := a.app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	return resp
}

func (a *testApp) send(t *testing.T, method, target string, body interface{}) *http.Response {
	t.Helper()
	return a.do(t, testutil.JSONRequest(t, method, target, body))
}

// seedAcme creates the two-template fixture: phases of 3 and 0 tasks, then a 1-task phase
func seedAcme(t *testing.T, db *gorm.DB) {
	t.Helper()
	testutil.CreateTemplate(t, db, "Launch Basics", models.CategorySEO,
		testutil.PhaseSpec{Name: "Discovery", Order: 1, Tasks: []string{"Brief", "Audit", "Competitors"}},
		testutil.PhaseSpec{Name: "Kickoff", Order: 2},
	)
	testutil.CreateTemplate(t, db, "Launch Email", models.CategoryEmailMarketing,
		testutil.PhaseSpec{Name: "Setup", Order: 1, Tasks: []string{"Connect ESP"}},
	)
}

func projectPath(projectID uint64, rest ...interface{}) string {
	path := fmt.Sprintf("/api/projects/%d", projectID)
	for i := 0; i+1 < len(rest); i += 2 {
		path += fmt.Sprintf("/%s/%d", rest[i], rest[i+1])
	}
	return path
}
