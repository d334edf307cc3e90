// Package rooms is a thin client for the hotel-room listings the admin panel
// also manages. Rooms have no billing lifecycle, so there is no manager here;
// the repository pattern and error taxonomy are shared with the orders client.
package rooms

import (
	"context"
	"net/url"
	"strconv"

	"github.com/kbamnote/patil-admin/internal/api"
)

// Room is one bookable hotel room.
type Room struct {
	ID            string   `json:"_id"`
	RoomNumber    string   `json:"roomNumber"`
	RoomType      string   `json:"roomType"`
	Description   string   `json:"description,omitempty"`
	PricePerNight float64  `json:"pricePerNight"`
	Capacity      int      `json:"capacity"`
	Amenities     []string `json:"amenities,omitempty"`
	IsAvailable   bool     `json:"isAvailable"`
}

// ListFilter selects rooms for a list request.
type ListFilter struct {
	Page      int
	Limit     int
	RoomType  string
	Available *bool
}

// Query encodes the filter as request query parameters, omitting unset
// optional filters.
func (f ListFilter) Query() url.Values {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 12
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(f.Page))
	q.Set("limit", strconv.Itoa(f.Limit))
	if f.RoomType != "" {
		q.Set("roomType", f.RoomType)
	}
	if f.Available != nil {
		q.Set("isAvailable", strconv.FormatBool(*f.Available))
	}
	return q
}

// Repository translates room operations into API calls.
type Repository struct {
	gw *api.Gateway
}

// NewRepository returns a repository backed by the given gateway.
func NewRepository(gw *api.Gateway) *Repository {
	return &Repository{gw: gw}
}

// RoomPage is one page of rooms with its paging metadata.
type RoomPage struct {
	Items      []Room
	Pagination api.Pagination
}

// List fetches a page of rooms matching the filter.
func (r *Repository) List(ctx context.Context, filter ListFilter) (*RoomPage, error) {
	var items []Room
	pagination, err := r.gw.Get(ctx, "rooms.List", "/rooms", filter.Query(), &items)
	if err != nil {
		return nil, err
	}
	page := &RoomPage{Items: items}
	if pagination != nil {
		page.Pagination = *pagination
	}
	return page, nil
}

// Get fetches a single room by id.
func (r *Repository) Get(ctx context.Context, id string) (*Room, error) {
	var room Room
	if _, err := r.gw.Get(ctx, "rooms.Get", "/rooms/"+id, nil, &room); err != nil {
		return nil, err
	}
	return &room, nil
}
