// projects_test.go
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
	"io"
	"strings"
	"testing"

	"github.com/localnerve/projectsdb/internal/handlers"
	"github.com/localnerve/projectsdb/internal/models"
	"github.com/localnerve/projectsdb/internal/services"
	"github.com/localnerve/projectsdb/internal/testutil"
)

// TestCreateProject tests POST /api/projects and the read-back through GET /api/projects/:projectid
func TestCreateProject(t *testing.T) {
	ta := newTestApp(t, appOptions{})
	seedAcme(t, ta.db)

	resp := ta.send(t, "POST", "/api/projects", map[string]interface{}{
		"projectname": "Acme Launch",
		"description": "Spring relaunch",
		"projecttype": "General",
	})
	testutil.AssertStatus(t, resp, 201)

	var created handlers.ProjectResponse
	testutil.ParseJSON(t, resp, &created)
	if created.Project == nil || created.Project.ProjectID == 0 {
		t.Fatalf("Expected a created project, got %+v", created)
	}
	if created.Project.CreatedByUserID != 1 {
		t.Errorf("Expected the configured default creator, got %d", created.Project.CreatedByUserID)
	}
	if len(created.Project.Phases) != 0 {
		t.Error("Expected the create response to omit the provisioned tree")
	}

	resp = ta.send(t, "GET", projectPath(created.Project.ProjectID), nil)
	testutil.AssertStatus(t, resp, 200)

	var fetched handlers.ProjectResponse
	testutil.ParseJSON(t, resp, &fetched)
	if len(fetched.Project.ProjectTemplates) != 2 {
		t.Errorf("Expected 2 template links, got %d", len(fetched.Project.ProjectTemplates))
	}
	if len(fetched.Project.Phases) != 3 {
		t.Fatalf("Expected 3 phases, got %d", len(fetched.Project.Phases))
	}
	tasks := 0
	for _, phase := range fetched.Project.Phases {
		tasks += len(phase.Tasks)
		if phase.Status != models.StatusNotStarted {
			t.Errorf("Expected provisioned phase %q to be Not Started, got %q", phase.PhaseName, phase.Status)
		}
	}
	if tasks != 4 {
		t.Errorf("Expected 4 tasks, got %d", tasks)
	}
}

// TestProjectTemplateLinks checks that linked templates are sent without their unloaded phase trees
func TestProjectTemplateLinks(t *testing.T) {
	ta := newTestApp(t, appOptions{})
	seedAcme(t, ta.db)

	resp := ta.send(t, "POST", "/api/projects", map[string]interface{}{
		"projectname": "Acme Launch",
		"projecttype": "General",
	})
	testutil.AssertStatus(t, resp, 201)

	var created handlers.ProjectResponse
	testutil.ParseJSON(t, resp, &created)

	resp = ta.send(t, "GET", projectPath(created.Project.ProjectID), nil)
	testutil.AssertStatus(t, resp, 200)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response: %v", err)
	}
	if !strings.Contains(string(raw), `"templatename":"Launch Basics"`) {
		t.Errorf("Expected the linked template in %s", raw)
	}
	if strings.Contains(string(raw), `"templatephases"`) {
		t.Errorf("Expected unloaded template phases to be omitted, got %s", raw)
	}
}

func TestCreateProjectOptions(t *testing.T) {
	ta := newTestApp(t, appOptions{})
	seedAcme(t, ta.db)

	resp := ta.send(t, "POST", "/api/projects", map[string]interface{}{
		"projectname":     "Bare",
		"projecttype":     "General",
		"createdbyuserid": "5",
		"useAllTemplates": false,
	})
	testutil.AssertStatus(t, resp, 201)

	var created handlers.ProjectResponse
	testutil.ParseJSON(t, resp, &created)
	if created.Project.CreatedByUserID != 5 {
		t.Errorf("Expected creator 5 from a string id, got %d", created.Project.CreatedByUserID)
	}
	if n := testutil.Count(t, ta.db, &models.Phase{}); n != 0 {
		t.Errorf("Expected no phases without templates, got %d", n)
	}
}

func TestCreateProjectValidation(t *testing.T) {
	ta := newTestApp(t, appOptions{})

	for _, body := range []map[string]interface{}{
		{"projecttype": "General"},
		{"projectname": "No Type"},
		{"projectname": "  ", "projecttype": "General"},
	} {
		resp := ta.send(t, "POST", "/api/projects", body)
		testutil.AssertStatus(t, resp, 400)
		if errBody := testutil.ParseError(t, resp); errBody.Type != "validation" {
			t.Errorf("Expected a validation error, got %+v", errBody)
		}
	}

	resp := ta.do(t, testutil.JSONRequest(t, "POST", "/api/projects", "not an object"))
	testutil.AssertStatus(t, resp, 400)

	if n := testutil.Count(t, ta.db, &models.Project{}); n != 0 {
		t.Errorf("Expected no projects after validation failures, got %d", n)
	}

	// No session, no body id and no configured default leaves no creator
	ta.cfg.DefaultCreatorUserID = 0
	resp = ta.send(t, "POST", "/api/projects", map[string]interface{}{"projectname": "Orphan", "projecttype": "General"})
	testutil.AssertStatus(t, resp, 400)
}

func TestListProjects(t *testing.T) {
	ta := newTestApp(t, appOptions{})
	for i, projectType := range []string{"SEO", "Social Media", "SEO"} {
		testutil.CreateProject(t, ta.db, fmt.Sprintf("Project %d", i), projectType, 1)
	}

	tests := []struct {
		target string
		want   int
	}{
		{"/api/projects", 3},
		{"/api/projects?category=SEO", 2},
		{"/api/projects/cat/Social%20Media", 1},
		{"/api/projects/cat/Podcasts", 0},
	}

	for _, tt := range tests {
		resp := ta.send(t, "GET", tt.target, nil)
		testutil.AssertStatus(t, resp, 200)

		var body handlers.ProjectsResponse
		testutil.ParseJSON(t, resp, &body)
		if body.Projects == nil {
			t.Errorf("%s: expected a projects array", tt.target)
		}
		if len(body.Projects) != tt.want {
			t.Errorf("%s: expected %d projects, got %d", tt.target, tt.want, len(body.Projects))
		}
	}
}

func TestGetProjectErrors(t *testing.T) {
	ta := newTestApp(t, appOptions{})

	resp := ta.send(t, "GET", "/api/projects/abc", nil)
	testutil.AssertStatus(t, resp, 400)

	resp = ta.send(t, "GET", "/api/projects/999", nil)
	testutil.AssertStatus(t, resp, 404)
	if errBody := testutil.ParseError(t, resp); errBody.Error != "Project not found" {
		t.Errorf("Expected 'Project not found', got %q", errBody.Error)
	}

	resp = ta.send(t, "GET", "/api/projects/999/progress", nil)
	testutil.AssertStatus(t, resp, 404)
}

func TestProjectProgress(t *testing.T) {
	ta := newTestApp(t, appOptions{})
	project := testutil.CreateProject(t, ta.db, "Progress", "General", 1)
	phase := testutil.CreatePhase(t, ta.db, project.ProjectID, "Build", 1, "a", "b")

	resp := ta.send(t, "PUT", projectPath(project.ProjectID, "phases", phase.PhaseID, "tasks", phase.Tasks[0].TaskID),
		map[string]interface{}{"status": models.StatusCompleted})
	testutil.AssertStatus(t, resp, 200)

	resp = ta.send(t, "GET", projectPath(project.ProjectID)+"/progress", nil)
	testutil.AssertStatus(t, resp, 200)

	var progress services.ProjectProgress
	testutil.ParseJSON(t, resp, &progress)
	if progress.Tasks.Completed != 1 || progress.Tasks.Total != 2 || progress.Percentage != 50 {
		t.Errorf("Unexpected progress: %+v", progress)
	}
}
