package rooms_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbamnote/patil-admin/internal/api"
	"github.com/kbamnote/patil-admin/internal/rooms"
	"github.com/kbamnote/patil-admin/internal/session"
)

func newRepo(t *testing.T, handler http.HandlerFunc) *rooms.Repository {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	gw := api.New(server.URL, 5*time.Second, session.NewMemoryStoreWithToken("test-token", "admin"))
	return rooms.NewRepository(gw)
}

func TestListFilterQuery(t *testing.T) {
	available := true
	q := rooms.ListFilter{Page: 2, Limit: 10, RoomType: "deluxe", Available: &available}.Query()

	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "deluxe", q.Get("roomType"))
	assert.Equal(t, "true", q.Get("isAvailable"))

	q = rooms.ListFilter{}.Query()
	for _, key := range []string{"roomType", "isAvailable"} {
		_, present := q[key]
		assert.False(t, present, "unset filter %q must be omitted", key)
	}
}

func TestList(t *testing.T) {
	var gotQuery url.Values
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rooms", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": [
				{"_id": "r1", "roomNumber": "101", "roomType": "deluxe", "pricePerNight": 4500, "capacity": 2, "isAvailable": true},
				{"_id": "r2", "roomNumber": "102", "roomType": "suite", "pricePerNight": 8000, "capacity": 4, "isAvailable": false}
			],
			"pagination": {"currentPage": 1, "totalPages": 1, "totalItems": 2, "itemsPerPage": 12}
		}`))
	})

	page, err := repo.List(context.Background(), rooms.ListFilter{RoomType: "any"})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "101", page.Items[0].RoomNumber)
	assert.Equal(t, 4500.0, page.Items[0].PricePerNight)
	assert.False(t, page.Items[1].IsAvailable)
	assert.Equal(t, "any", gotQuery.Get("roomType"))
}

func TestGetNotFound(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success": false, "message": "room not found"}`))
	})

	_, err := repo.Get(context.Background(), "missing")
	require.ErrorIs(t, err, api.ErrNotFound)
}
