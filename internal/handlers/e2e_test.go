// e2e_test.go
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
	"time"

	"github.com/imroc/req/v3"
	"github.com/localnerve/projectsdb/internal/handlers"
	"github.com/localnerve/projectsdb/internal/models"
	"github.com/localnerve/projectsdb/internal/services"
	"github.com/localnerve/projectsdb/internal/testutil"
)

// TestE2EWithFullStack runs the service image against a database and a live Authorizer
func TestE2EWithFullStack(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E test in short mode")
	}

	tc, err := testutil.CreateTestContainers(t, testutil.ContainerOptions{WithService: true})
	if err != nil {
		t.Fatalf("Failed to start test containers: %v", err)
	}
	defer tc.Terminate(t)

	client := req.C().SetBaseURL(tc.ServiceURL).SetTimeout(30 * time.Second)

	t.Run("HealthCheck", func(t *testing.T) {
		var health services.HealthCheckResult
		resp, err := client.R().SetSuccessResult(&health).Get("/api/health")
		if err != nil {
			t.Fatalf("Health request failed: %v", err)
		}
		if resp.StatusCode != http.StatusOK || health.Status != "healthy" {
			t.Errorf("Expected a healthy service, got %d %+v", resp.StatusCode, health)
		}
	})

	t.Run("RequiresSession", func(t *testing.T) {
		resp, err := client.R().Get("/api/projects")
		if err != nil {
			t.Fatalf("Request failed: %v", err)
		}
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("Expected 401, got %d", resp.StatusCode)
		}
	})

	email := fmt.Sprintf("e2e-%d@example.com", time.Now().UnixNano())
	token := testutil.AcquireAccount(t, tc.AuthorizerURL, "projectsdb", email, testutil.GeneratePassword())
	authed := client.Clone().SetCommonBearerAuthToken(token)

	var projectID uint64
	t.Run("ProvisionProject", func(t *testing.T) {
		var created handlers.ProjectResponse
		resp, err := authed.R().
			SetBody(map[string]interface{}{"projectname": "E2E Launch", "projecttype": "General"}).
			SetSuccessResult(&created).
			Post("/api/projects")
		if err != nil {
			t.Fatalf("Create request failed: %v", err)
		}
		if resp.StatusCode != http.StatusCreated || created.Project == nil {
			t.Fatalf("Expected 201 with a project, got %d: %s", resp.StatusCode, resp.String())
		}
		projectID = created.Project.ProjectID

		var detail handlers.ProjectResponse
		resp, err = authed.R().SetSuccessResult(&detail).Get(fmt.Sprintf("/api/projects/%d", projectID))
		if err != nil || resp.StatusCode != http.StatusOK {
			t.Fatalf("Get request failed: %v %s", err, resp.String())
		}
		if len(detail.Project.ProjectTemplates) != 5 || len(detail.Project.Phases) != 44 {
			t.Errorf("Expected 5 links and 44 phases, got %d and %d",
				len(detail.Project.ProjectTemplates), len(detail.Project.Phases))
		}
	})

	t.Run("CompleteTask", func(t *testing.T) {
		if projectID == 0 {
			t.Skip("No project provisioned")
		}
		var detail handlers.ProjectResponse
		if _, err := authed.R().SetSuccessResult(&detail).Get(fmt.Sprintf("/api/projects/%d", projectID)); err != nil {
			t.Fatalf("Get request failed: %v", err)
		}
		phase := detail.Project.Phases[0]
		task := phase.Tasks[0]

		var updated models.Task
		resp, err := authed.R().
			SetBody(map[string]interface{}{"status": models.StatusCompleted}).
			SetSuccessResult(&updated).
			Put(fmt.Sprintf("/api/projects/%d/phases/%d/tasks/%d", projectID, phase.PhaseID, task.TaskID))
		if err != nil || resp.StatusCode != http.StatusOK {
			t.Fatalf("Update request failed: %v %s", err, resp.String())
		}
		if updated.CompletedBy == nil || updated.CompletedAt == nil {
			t.Errorf("Expected the session user to be stamped as completer, got %+v", updated)
		}
	})
}
