package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "financeai/internal/errors"
)

func TestOpenAIGenerator_Generate(t *testing.T) {
	t.Run("returns_first_choice", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			var body struct {
				Model    string `json:"model"`
				Messages []struct {
					Role    string `json:"role"`
					Content string `json:"content"`
				} `json:"messages"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "test-model", body.Model)
			require.Len(t, body.Messages, 2)
			assert.Equal(t, "system", body.Messages[0].Role)
			assert.Equal(t, "user", body.Messages[1].Role)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","created":1,"model":"test-model",
				"choices":[{"index":0,"message":{"role":"assistant","content":"  • Save 20%  "},"finish_reason":"stop"}]}`))
		}))
		defer srv.Close()

		gen := NewOpenAIGenerator("test-key", srv.URL+"/v1/", "test-model", time.Second)
		text, err := gen.Generate(context.Background(), "system", "user")

		require.NoError(t, err)
		assert.Equal(t, "• Save 20%", text)
	})

	t.Run("wraps_backend_errors", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
		}))
		defer srv.Close()

		gen := NewOpenAIGenerator("test-key", srv.URL+"/v1", "test-model", time.Second)
		_, err := gen.Generate(context.Background(), "system", "user")

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrExternalService)
	})

	t.Run("empty_choices_is_an_error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","created":1,"model":"m","choices":[]}`))
		}))
		defer srv.Close()

		gen := NewOpenAIGenerator("test-key", srv.URL+"/v1", "m", time.Second)
		_, err := gen.Generate(context.Background(), "system", "user")

		assert.ErrorIs(t, err, apperrors.ErrExternalService)
	})
}
