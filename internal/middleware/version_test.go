package middleware_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/localnerve/projectsdb/internal/middleware"
)

func TestVersionMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.VersionMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		c.Set("X-Seen-Version", c.Locals("apiVersion").(string))
		c.Set("X-Seen-Id", middleware.RequestID(c))
		return c.SendStatus(fiber.StatusNoContent)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Api-Version", "1")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}

	if v := resp.Header.Get("X-Seen-Version"); v != "1.0.0" {
		t.Errorf("Expected version alias to resolve to 1.0.0, got %q", v)
	}
	id := resp.Header.Get(middleware.RequestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("Expected a generated request id, got %q", id)
	}
	if resp.Header.Get("X-Seen-Id") != id {
		t.Error("Expected the handler to see the response request id")
	}

	given := uuid.NewString()
	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set(middleware.RequestIDHeader, given)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if got := resp.Header.Get(middleware.RequestIDHeader); got != given {
		t.Errorf("Expected the client request id %q to be kept, got %q", given, got)
	}
}
