package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "client error keeps message",
			err:         fiber.NewError(fiber.StatusNotFound, "Branch with IFSC X not found."),
			wantStatus:  fiber.StatusNotFound,
			wantMessage: "Branch with IFSC X not found.",
		},
		{
			name:        "plain error is hidden",
			err:         errors.New("no such table: branches"),
			wantStatus:  fiber.StatusInternalServerError,
			wantMessage: internalErrorMessage,
		},
		{
			name:        "fiber server error is hidden",
			err:         fiber.NewError(fiber.StatusServiceUnavailable, "pool exhausted"),
			wantStatus:  fiber.StatusServiceUnavailable,
			wantMessage: internalErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
			app.Get("/", func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			raw, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.Equal(t, false, body["status"])
			assert.Equal(t, tt.wantMessage, body["message"])
			assert.Contains(t, body, "data")
			assert.Nil(t, body["data"])
		})
	}
}
