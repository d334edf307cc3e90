package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbamnote/patil-admin/internal/api"
	"github.com/kbamnote/patil-admin/internal/session"
)

func newGateway(t *testing.T, handler http.HandlerFunc, store session.Store) *api.Gateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return api.New(server.URL, 5*time.Second, store)
}

func writeEnvelope(w http.ResponseWriter, status int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestGetAttachesBearerTokenAndRequestID(t *testing.T) {
	var gotAuth, gotRequestID string
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		writeEnvelope(w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{"ok": true}})
	}, session.NewMemoryStoreWithToken("tok-123", "admin"))

	var out struct {
		OK bool `json:"ok"`
	}
	_, err := gw.Get(context.Background(), "test.Get", "/ping", nil, &out)
	require.NoError(t, err)
	assert.True(t, out.OK)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestGetWithoutSessionSendsNoAuthHeader(t *testing.T) {
	var gotAuth string
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeEnvelope(w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{}})
	}, session.NewMemoryStore())

	_, err := gw.Get(context.Background(), "test.Get", "/ping", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestGetReturnsPagination(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, map[string]any{
			"success": true,
			"data":    []any{},
			"pagination": map[string]any{
				"currentPage": 2, "totalPages": 5, "totalItems": 55,
				"itemsPerPage": 12, "hasNextPage": true, "hasPrevPage": true,
			},
		})
	}, session.NewMemoryStoreWithToken("tok", "admin"))

	var out []struct{}
	pagination, err := gw.Get(context.Background(), "test.Get", "/things", nil, &out)
	require.NoError(t, err)
	require.NotNil(t, pagination)
	assert.Equal(t, 2, pagination.CurrentPage)
	assert.Equal(t, 5, pagination.TotalPages)
	assert.True(t, pagination.HasNextPage)
}

func TestGetForwardsQueryParameters(t *testing.T) {
	var gotQuery url.Values
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		writeEnvelope(w, http.StatusOK, map[string]any{"success": true, "data": []any{}})
	}, session.NewMemoryStoreWithToken("tok", "admin"))

	query := url.Values{}
	query.Set("page", "3")
	query.Set("paymentStatus", "paid")
	_, err := gw.Get(context.Background(), "test.Get", "/things", query, nil)
	require.NoError(t, err)
	assert.Equal(t, "3", gotQuery.Get("page"))
	assert.Equal(t, "paid", gotQuery.Get("paymentStatus"))
}

func TestStatusCodeTaxonomy(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		message string
		want    error
	}{
		{"unauthorized", http.StatusUnauthorized, "token expired", api.ErrUnauthorized},
		{"forbidden", http.StatusForbidden, "", api.ErrUnauthorized},
		{"not found", http.StatusNotFound, "order not found", api.ErrNotFound},
		{"validation", http.StatusBadRequest, "gstPercentage must be between 0 and 100", api.ErrValidation},
		{"server error", http.StatusInternalServerError, "", api.ErrServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
				writeEnvelope(w, tt.status, map[string]any{"success": false, "message": tt.message})
			}, session.NewMemoryStoreWithToken("tok", "admin"))

			_, err := gw.Get(context.Background(), "test.Get", "/things/1", nil, nil)
			require.ErrorIs(t, err, tt.want)

			var reqErr *api.RequestError
			require.ErrorAs(t, err, &reqErr)
			assert.Equal(t, tt.status, reqErr.StatusCode)
			if tt.message != "" {
				// The server's message is surfaced verbatim.
				assert.Equal(t, tt.message, reqErr.Message)
			} else {
				assert.NotEmpty(t, reqErr.Message)
			}
		})
	}
}

func TestSuccessFalseIsFailureEvenWith200(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, map[string]any{"success": false, "message": "something went wrong"})
	}, session.NewMemoryStoreWithToken("tok", "admin"))

	_, err := gw.Get(context.Background(), "test.Get", "/things", nil, nil)
	require.ErrorIs(t, err, api.ErrServer)
	var reqErr *api.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "something went wrong", reqErr.Message)
}

func TestShapeMismatchFailsAsValidation(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, map[string]any{"success": true, "data": "not-an-object"})
	}, session.NewMemoryStoreWithToken("tok", "admin"))

	var out struct {
		Name string `json:"name"`
	}
	_, err := gw.Get(context.Background(), "test.Get", "/things/1", nil, &out)
	require.ErrorIs(t, err, api.ErrValidation)
}

func TestUnreachableServerIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing is listening anymore

	gw := api.New(server.URL, time.Second, session.NewMemoryStoreWithToken("tok", "admin"))
	_, err := gw.Get(context.Background(), "test.Get", "/things", nil, nil)
	require.ErrorIs(t, err, api.ErrNetwork)

	var reqErr *api.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Zero(t, reqErr.StatusCode)
}

func TestLoginReturnsTokenAndRole(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["email"] != "admin@example.com" || body["password"] != "secret" {
			writeEnvelope(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "invalid credentials"})
			return
		}
		writeEnvelope(w, http.StatusOK, map[string]any{
			"success": true,
			"data":    map[string]any{"token": "fresh-token", "role": "admin"},
		})
	}, session.NewMemoryStore())

	result, err := gw.Login(context.Background(), "admin@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", result.Token)
	assert.Equal(t, "admin", result.Role)

	_, err = gw.Login(context.Background(), "admin@example.com", "wrong")
	require.ErrorIs(t, err, api.ErrUnauthorized)
}
