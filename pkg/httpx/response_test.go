package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewEnvelopeDefaults(t *testing.T) {
	t.Parallel()

	env := NewEnvelope()
	require.Equal(t, http.StatusInternalServerError, env.Status)
	require.False(t, env.Success)
	require.Empty(t, env.Errors)
	require.Empty(t, env.Data)
}

func TestWriteEnvelope(t *testing.T) {
	t.Parallel()

	env := NewEnvelope()
	env.Status = http.StatusOK
	env.Success = true
	env.Data = map[string]string{"name": "Alice"}

	rec := httptest.NewRecorder()
	WriteEnvelope(rec, env)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json; charset=UTF-8", rec.Header().Get("Content-Type"))

	var got struct {
		Status  int               `json:"status"`
		Success bool              `json:"success"`
		Errors  []any             `json:"errors"`
		Data    map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, http.StatusOK, got.Status)
	require.True(t, got.Success)
	require.NotNil(t, got.Errors, "errors must serialize as an empty array, not null")
	require.Empty(t, got.Errors)
	require.Equal(t, "Alice", got.Data["name"])
}

func TestChainOrder(t *testing.T) {
	t.Parallel()

	var order []string
	tag := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), tag("outer"), tag("inner"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"outer", "inner", "handler"}, order)
}
