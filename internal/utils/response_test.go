package utils

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/projectsdb/internal/types"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", types.ValidationError("bad"), fiber.StatusBadRequest},
		{"client auth code", types.AuthError("invalid_credentials", "Invalid email or password", nil), fiber.StatusBadRequest},
		{"session auth", types.AuthError("invalid_session", "Session is not valid", nil), fiber.StatusUnauthorized},
		{"external", types.ExternalServiceError("Slack failed", nil), fiber.StatusBadGateway},
		{"not found", types.NotFoundError("Project not found"), fiber.StatusNotFound},
		{"duplicate", &types.AppError{Kind: types.KindPersistence, Code: "duplicate", Err: types.ErrDuplicate}, fiber.StatusConflict},
		{"persistence", types.PersistenceError("Failed", errors.New("boom")), fiber.StatusInternalServerError},
		{"unclassified", errors.New("boom"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := StatusFor(tt.err); got != tt.want {
			t.Errorf("%s: expected status %d, got %d", tt.name, tt.want, got)
		}
	}
}

func TestFailureResponse(t *testing.T) {
	app := fiber.New()
	app.Get("/signin", func(c *fiber.Ctx) error {
		return FailureResponse(c, types.AuthError("invalid_credentials", "Invalid email or password", nil))
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return FailureResponse(c, types.NotFoundError("Project not found"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/signin", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}

	var body ErrorResponseStruct
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body.Error != "invalid_credentials" {
		t.Errorf("Expected the auth code as the error text, got %q", body.Error)
	}
	if body.Message != "Invalid email or password" || body.Ok || body.URL != "/signin" {
		t.Errorf("Unexpected error body: %+v", body)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/missing?x=1", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}
	body = ErrorResponseStruct{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body.Error != "Project not found" || body.Type != "not_found" || body.URL != "/missing?x=1" {
		t.Errorf("Unexpected error body: %+v", body)
	}
}
