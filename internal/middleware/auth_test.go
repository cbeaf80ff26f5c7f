package middleware_test

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/projectsdb/internal/middleware"
	"github.com/localnerve/projectsdb/internal/models"
	"github.com/localnerve/projectsdb/internal/services"
	"github.com/localnerve/projectsdb/internal/testutil"
	"github.com/localnerve/projectsdb/internal/testutil/fakeauth"
	"gorm.io/gorm"
)

const testSecret = "middleware-test-secret"

func newAuthApp(t *testing.T, db *gorm.DB, auth *fakeauth.Authenticator, disabled bool) *fiber.App {
	t.Helper()

	cfg := middleware.AuthConfig{
		DB:       db,
		Auth:     auth,
		Tokens:   services.NewTokenVerifier(testSecret),
		Disabled: disabled,
	}

	app := fiber.New()
	app.Get("/whoami", middleware.RequireUser(cfg), func(c *fiber.Ctx) error {
		user := middleware.CurrentUser(c)
		if user == nil {
			return c.SendString("anonymous")
		}
		return c.SendString(user.Email)
	})
	app.Get("/admin", middleware.RequireUser(cfg), middleware.RequireRole(disabled, models.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendString("welcome")
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, path string, headers map[string]string) (int, string) {
	t.Helper()

	req := httptest.NewRequest("GET", path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestRequireUserSessionCookie(t *testing.T) {
	db := testutil.NewTestDB(t)
	auth := fakeauth.New()
	session := auth.AddAccount("pat@example.com", "secret1", "Pat")
	app := newAuthApp(t, db, auth, false)

	status, body := doRequest(t, app, "/whoami", map[string]string{"Cookie": services.SessionCookie + "=" + session})
	if status != fiber.StatusOK || body != "pat@example.com" {
		t.Errorf("Expected 200 pat@example.com, got %d %q", status, body)
	}

	// The first request created the local user
	if n := testutil.Count(t, db, &models.User{}); n != 1 {
		t.Errorf("Expected 1 local user, got %d", n)
	}

	status, _ = doRequest(t, app, "/whoami", map[string]string{middleware.SessionHeader: session})
	if status != fiber.StatusOK {
		t.Errorf("Expected session header to be accepted, got %d", status)
	}
	if n := testutil.Count(t, db, &models.User{}); n != 1 {
		t.Errorf("Expected the local user to be reused, got %d users", n)
	}
}

func TestRequireUserRejects(t *testing.T) {
	db := testutil.NewTestDB(t)
	app := newAuthApp(t, db, fakeauth.New(), false)

	tests := []struct {
		name    string
		headers map[string]string
	}{
		{"no credential", nil},
		{"unknown session", map[string]string{middleware.SessionHeader: "stale"}},
		{"forged bearer", map[string]string{"Authorization": "Bearer " + testutil.SignAccessToken(t, "wrong", "sub", "x@example.com", time.Hour)}},
		{"expired bearer", map[string]string{"Authorization": "Bearer " + testutil.SignAccessToken(t, testSecret, "sub", "x@example.com", -time.Hour)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := doRequest(t, app, "/whoami", tt.headers)
			if status != fiber.StatusUnauthorized {
				t.Errorf("Expected status 401, got %d", status)
			}
		})
	}
}

func TestRequireUserBearerToken(t *testing.T) {
	db := testutil.NewTestDB(t)
	app := newAuthApp(t, db, fakeauth.New(), false)

	token := testutil.SignAccessToken(t, testSecret, "4d9c6a0e-0d3b-4c39-9a8e-54b6f1f7a001", "lou@example.com", time.Hour)
	status, body := doRequest(t, app, "/whoami", map[string]string{"Authorization": "Bearer " + token})
	if status != fiber.StatusOK || body != "lou@example.com" {
		t.Errorf("Expected 200 lou@example.com, got %d %q", status, body)
	}
}

func TestRequireRole(t *testing.T) {
	db := testutil.NewTestDB(t)
	auth := fakeauth.New()
	memberSession := auth.AddAccount("member@example.com", "secret1", "Member")
	adminSession := auth.AddAccount("admin@example.com", "secret1", "Admin")
	testutil.CreateUser(t, db, "Admin", "admin@example.com", models.RoleAdmin)
	app := newAuthApp(t, db, auth, false)

	status, _ := doRequest(t, app, "/admin", map[string]string{middleware.SessionHeader: memberSession})
	if status != fiber.StatusForbidden {
		t.Errorf("Expected status 403 for a member, got %d", status)
	}

	status, body := doRequest(t, app, "/admin", map[string]string{middleware.SessionHeader: adminSession})
	if status != fiber.StatusOK || body != "welcome" {
		t.Errorf("Expected 200 welcome for an admin, got %d %q", status, body)
	}
}

func TestAuthDisabled(t *testing.T) {
	db := testutil.NewTestDB(t)
	app := newAuthApp(t, db, nil, true)

	status, body := doRequest(t, app, "/whoami", nil)
	if status != fiber.StatusOK || body != "anonymous" {
		t.Errorf("Expected anonymous access, got %d %q", status, body)
	}

	status, _ = doRequest(t, app, "/admin", nil)
	if status != fiber.StatusOK {
		t.Errorf("Expected role checks to be skipped, got %d", status)
	}
}
