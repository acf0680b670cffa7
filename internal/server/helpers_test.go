package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func TestParsePagination(t *testing.T) {
	app := fiber.New()
	var gotLimit, gotOffset int
	app.Get("/", func(c *fiber.Ctx) error {
		gotLimit, gotOffset = parsePagination(c)
		return c.SendStatus(http.StatusOK)
	})

	tests := []struct {
		name           string
		query          string
		expectedLimit  int
		expectedOffset int
	}{
		{"defaults", "", defaultPageSize, 0},
		{"explicit values", "?limit=5&offset=10", 5, 10},
		{"limit capped at max", "?limit=5000", maxPageSize, 0},
		{"negative values fall back", "?limit=-1&offset=-3", defaultPageSize, 0},
		{"non-numeric values fall back", "?limit=abc&offset=xyz", defaultPageSize, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/"+tt.query, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			_ = resp.Body.Close()
			assert.Equal(t, tt.expectedLimit, gotLimit)
			assert.Equal(t, tt.expectedOffset, gotOffset)
		})
	}
}

func TestRespondServiceError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"validation maps to 400", models.NewValidationError("bad input"), http.StatusBadRequest},
		{"conflict maps to 400", models.NewConflictError("already there"), http.StatusBadRequest},
		{"forbidden maps to 403", models.NewForbiddenError("not yours"), http.StatusForbidden},
		{"not found maps to 404", models.NewNotFoundError("Post", uint(1)), http.StatusNotFound},
		{"unauthorized maps to 401", models.NewUnauthorizedError("who are you"), http.StatusUnauthorized},
		{"internal maps to 500", models.NewInternalError(errors.New("boom")), http.StatusInternalServerError},
		{"plain error maps to 500", errors.New("unexpected"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return respondServiceError(c, tt.err)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			_ = resp.Body.Close()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}
