package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetFeedHandler(t *testing.T) {
	t.Run("feed contains followed authors only", func(t *testing.T) {
		s, m := newTestServer()
		app := fiber.New()
		app.Use(asUser(1))
		app.Get("/feed", s.GetFeed)

		m.profiles.On("FollowingUserIDs", mock.Anything, uint(1)).Return([]uint{2}, nil)
		m.posts.On("ListByAuthorIDs", mock.Anything, []uint{2}, 20, 0, uint(1)).
			Return([]*models.Post{{ID: 9, UserID: 2, Content: "from bob"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/feed", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		defer func() { _ = resp.Body.Close() }()
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		var posts []map[string]any
		require.NoError(t, json.Unmarshal(raw, &posts))
		require.Len(t, posts, 1)
		assert.Equal(t, "from bob", posts[0]["content"])
	})

	t.Run("following no one returns an empty array", func(t *testing.T) {
		s, m := newTestServer()
		app := fiber.New()
		app.Use(asUser(1))
		app.Get("/feed", s.GetFeed)

		m.profiles.On("FollowingUserIDs", mock.Anything, uint(1)).Return([]uint{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/feed", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		defer func() { _ = resp.Body.Close() }()
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.JSONEq(t, "[]", string(raw))
	})

	t.Run("pagination params are forwarded", func(t *testing.T) {
		s, m := newTestServer()
		app := fiber.New()
		app.Use(asUser(1))
		app.Get("/feed", s.GetFeed)

		m.profiles.On("FollowingUserIDs", mock.Anything, uint(1)).Return([]uint{2}, nil)
		m.posts.On("ListByAuthorIDs", mock.Anything, []uint{2}, 5, 10, uint(1)).
			Return([]*models.Post{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/feed?limit=5&offset=10", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()
		m.posts.AssertExpectations(t)
	})
}
