package utils

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/projectsdb/internal/logutils"
	"github.com/localnerve/projectsdb/internal/types"
)

// Auth codes reported to the client as the error text, for its friendly-message dictionary
var clientAuthCodes = map[string]bool{
	"email_exists":        true,
	"weak_password":       true,
	"invalid_credentials": true,
	"email_not_confirmed": true,
}

// SuccessResponse sends a standard success response
func SuccessResponse(c *fiber.Ctx, data interface{}, status int) error {
	return c.Status(status).JSON(data)
}

// MessageResponse sends a success body with a human message
func MessageResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": message,
		"ok":      true,
	})
}

// ErrorResponse sends a standard error response
func ErrorResponse(c *fiber.Ctx, message string, status int, errorType string) error {
	return errorBody(c, message, message, status, errorType)
}

// NotFoundResponse sends a 404 not found response
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return errorBody(c, message, message, fiber.StatusNotFound, "not_found")
}

// FailureResponse maps a service error onto its HTTP status and error body
func FailureResponse(c *fiber.Ctx, err error) error {
	var appErr *types.AppError
	if !errors.As(err, &appErr) {
		logutils.Log.WithError(err).WithField("url", c.OriginalURL()).Error("Unclassified request failure")
		return errorBody(c, "Internal Server Error", err.Error(), fiber.StatusInternalServerError, "internal")
	}

	status := StatusFor(err)
	if status >= fiber.StatusInternalServerError {
		logutils.Log.WithError(err).WithField("url", c.OriginalURL()).Error(appErr.Message)
	}

	errorText := appErr.Message
	if appErr.Kind == types.KindAuth && clientAuthCodes[appErr.Code] {
		errorText = appErr.Code
	}

	return errorBody(c, errorText, appErr.Message, status, appErr.Code)
}

// StatusFor returns the HTTP status of a service error
func StatusFor(err error) int {
	var appErr *types.AppError
	if !errors.As(err, &appErr) {
		return fiber.StatusInternalServerError
	}

	switch appErr.Kind {
	case types.KindValidation:
		return fiber.StatusBadRequest
	case types.KindAuth:
		if clientAuthCodes[appErr.Code] {
			return fiber.StatusBadRequest
		}
		return fiber.StatusUnauthorized
	case types.KindExternal:
		return fiber.StatusBadGateway
	case types.KindPersistence:
		switch {
		case errors.Is(err, types.ErrNotFound):
			return fiber.StatusNotFound
		case errors.Is(err, types.ErrDuplicate):
			return fiber.StatusConflict
		}
	}
	return fiber.StatusInternalServerError
}

func errorBody(c *fiber.Ctx, errorText, message string, status int, errorType string) error {
	return c.Status(status).JSON(ErrorResponseStruct{
		Status:    status,
		Error:     errorText,
		Message:   message,
		Ok:        false,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		URL:       c.OriginalURL(),
		Type:      errorType,
	})
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Ok        bool   `json:"ok"`
	Timestamp string `json:"timestamp"`
	URL       string `json:"url"`
	Type      string `json:"type,omitempty"`
}

// MessageResponseStruct defines the schema for message-only success responses
type MessageResponseStruct struct {
	Message string `json:"message"`
	Ok      bool   `json:"ok"`
}
