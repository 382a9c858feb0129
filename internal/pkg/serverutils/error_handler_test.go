package serverutils

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"hri-companion-be/internal/pkg/apperror"
)

type silentLogger struct{}

func (silentLogger) Debug(module, message string, details map[string]interface{}) {}

func (silentLogger) Info(module, message string, details map[string]interface{}) {}

func (silentLogger) Warn(module, message string, details map[string]interface{}) {}

func (silentLogger) Error(module, message string, details map[string]interface{}) {}

func (silentLogger) Sync() error { return nil }

func TestErrorHandlerMapsDomainCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", apperror.Validation("bad input"), fiber.StatusBadRequest, "validation_error"},
		{"not found", apperror.NotFound("missing"), fiber.StatusNotFound, "not_found"},
		{"conflict", apperror.Conflict("duplicate"), fiber.StatusConflict, "conflict"},
		{"unauthorized", apperror.Unauthorized("nope"), fiber.StatusUnauthorized, "unauthorized"},
		{"forbidden", apperror.Forbidden("denied"), fiber.StatusForbidden, "forbidden"},
		{"external service", apperror.ExternalService("down"), fiber.StatusServiceUnavailable, "external_service_error"},
		{"internal", apperror.Internal("oops"), fiber.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(ErrorHandlerMiddleware(silentLogger{}))
			app.Get("/boom", func(ctx *fiber.Ctx) error {
				return tt.err
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}

			raw, _ := io.ReadAll(resp.Body)
			var body map[string]interface{}
			if err := json.Unmarshal(raw, &body); err != nil {
				t.Fatalf("body is not JSON: %v", err)
			}
			if body["code"] != tt.wantCode {
				t.Errorf("code = %v, want %q", body["code"], tt.wantCode)
			}
		})
	}
}

func TestErrorHandlerIncludesDetails(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(silentLogger{}))
	app.Get("/boom", func(ctx *fiber.Ctx) error {
		return apperror.Validation("bad input").
			WithDetails(map[string]interface{}{"age": "failed \"lte\" validation"})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var body map[string]interface{}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	details, ok := body["details"].(map[string]interface{})
	if !ok || details["age"] == nil {
		t.Errorf("details = %v", body["details"])
	}
}

func TestErrorHandlerPlainErrorBecomes500(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(silentLogger{}))
	app.Get("/boom", func(ctx *fiber.Ctx) error {
		return fiber.ErrTeapot
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusTeapot {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusTeapot)
	}
}
