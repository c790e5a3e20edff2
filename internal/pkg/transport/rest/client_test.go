package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Get(t *testing.T) {
	t.Run("returns the raw body of a successful response", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/blocks/7", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Accept"))

			fmt.Fprint(w, `{"number":"7"}`)
		}))
		defer mockServer.Close()

		c := NewClient(mockServer.Client(), mockServer.URL+"/api")

		result, err := c.Get(t.Context(), "blocks/7")
		require.NoError(t, err)
		assert.JSONEq(t, `{"number":"7"}`, string(result))
	})

	t.Run("maps 404 to ErrNotFound", func(t *testing.T) {
		mockServer := httptest.NewServer(http.NotFoundHandler())
		defer mockServer.Close()

		c := NewClient(mockServer.Client(), mockServer.URL)

		_, err := c.Get(t.Context(), "blocks/7")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("reports other non 2xx statuses with a truncated body", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, strings.Repeat("x", 1000))
		}))
		defer mockServer.Close()

		c := NewClient(mockServer.Client(), mockServer.URL)

		_, err := c.Get(t.Context(), "blocks/head")
		require.ErrorIs(t, err, ErrUnexpectedStatus)
		assert.Contains(t, err.Error(), "[400]")
		assert.Less(t, len(err.Error()), 400)
	})

	t.Run("rejects invalid json", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"number":`)
		}))
		defer mockServer.Close()

		c := NewClient(mockServer.Client(), mockServer.URL)

		_, err := c.Get(t.Context(), "blocks/head")
		assert.ErrorIs(t, err, ErrInvalidJSON)
	})

	t.Run("fails when the server is unreachable", func(t *testing.T) {
		mockServer := httptest.NewServer(http.NotFoundHandler())
		mockServer.Close()

		c := NewClient(mockServer.Client(), mockServer.URL)

		_, err := c.Get(t.Context(), "blocks/head")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})

	t.Run("honours context cancellation", func(t *testing.T) {
		mockServer := httptest.NewServer(http.NotFoundHandler())
		defer mockServer.Close()

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		c := NewClient(mockServer.Client(), mockServer.URL)

		_, err := c.Get(ctx, "blocks/head")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
