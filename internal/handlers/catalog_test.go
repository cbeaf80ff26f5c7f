package handlers_test

import (
	"testing"

	"github.com/localnerve/projectsdb/internal/handlers"
	"github.com/localnerve/projectsdb/internal/services"
	"github.com/localnerve/projectsdb/internal/testutil"
)

func TestListTemplates(t *testing.T) {
	ta := newTestApp(t, appOptions{})

	resp := ta.send(t, "GET", "/api/templates", nil)
	testutil.AssertStatus(t, resp, 200)

	var empty handlers.TemplatesResponse
	testutil.ParseJSON(t, resp, &empty)
	if empty.Templates == nil || len(empty.Templates) != 0 {
		t.Errorf("Expected an empty templates array, got %+v", empty.Templates)
	}

	seedAcme(t, ta.db)

	resp = ta.send(t, "GET", "/api/templates", nil)
	testutil.AssertStatus(t, resp, 200)

	var body handlers.TemplatesResponse
	testutil.ParseJSON(t, resp, &body)
	if len(body.Templates) != 2 {
		t.Fatalf("Expected 2 templates, got %d", len(body.Templates))
	}
	first := body.Templates[0]
	if len(first.Phases) != 2 || first.Phases[0].PhaseName != "Discovery" || len(first.Phases[0].Tasks) != 3 {
		t.Errorf("Unexpected template tree: %+v", first)
	}
}

func TestSeedTemplatesRoute(t *testing.T) {
	ta := newTestApp(t, appOptions{})

	for i, want := range []int{5, 0} {
		resp := ta.send(t, "POST", "/api/templates/seed", nil)
		testutil.AssertStatus(t, resp, 200)

		var result services.SeedResult
		testutil.ParseJSON(t, resp, &result)
		if result.Created != want {
			t.Errorf("Run %d: expected %d created, got %+v", i+1, want, result)
		}
	}
}

func TestListUsers(t *testing.T) {
	ta := newTestApp(t, appOptions{})
	testutil.CreateUser(t, ta.db, "Sam", "sam@example.com", "")
	testutil.CreateUser(t, ta.db, "Dana", "dana@example.com", "")

	resp := ta.send(t, "GET", "/api/users", nil)
	testutil.AssertStatus(t, resp, 200)

	var body handlers.UsersResponse
	testutil.ParseJSON(t, resp, &body)
	if len(body.Users) != 2 {
		t.Errorf("Expected 2 users, got %d", len(body.Users))
	}
}

func TestHealthRoute(t *testing.T) {
	ta := newTestApp(t, appOptions{})

	resp := ta.send(t, "GET", "/api/health", nil)
	testutil.AssertStatus(t, resp, 200)

	var result services.HealthCheckResult
	testutil.ParseJSON(t, resp, &result)
	if result.Status != "healthy" || result.Database != "ok" {
		t.Errorf("Unexpected health result: %+v", result)
	}

	sqlDB, err := ta.db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.Close()

	resp = ta.send(t, "GET", "/api/health", nil)
	testutil.AssertStatus(t, resp, 503)
}
