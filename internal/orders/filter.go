package orders

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Paging defaults for the orders list. The list view renders twelve cards per
// page unless the operator asks for more.
const (
	DefaultPage  = 1
	DefaultLimit = 12
)

// ListFilter selects which orders a list request returns. Page and Limit are
// always sent; the rest are optional and omitted from the request entirely
// when unset (the server treats an empty value differently from an absent
// one).
//
// The same encoding is used for the client-visible /orders route, so a filter
// survives a round trip through the address bar unchanged.
type ListFilter struct {
	Page          int
	Limit         int
	CustomerName  string
	PaymentStatus PaymentStatus
	StartDate     string // YYYY-MM-DD, passed through to the server
	EndDate       string // YYYY-MM-DD
}

// Normalized returns a copy with out-of-range paging replaced by defaults.
func (f ListFilter) Normalized() ListFilter {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
	return f
}

// Query encodes the filter as request query parameters.
func (f ListFilter) Query() url.Values {
	f = f.Normalized()
	q := url.Values{}
	q.Set("page", strconv.Itoa(f.Page))
	q.Set("limit", strconv.Itoa(f.Limit))
	if f.CustomerName != "" {
		q.Set("search", f.CustomerName)
	}
	if f.PaymentStatus != "" {
		q.Set("paymentStatus", string(f.PaymentStatus))
	}
	if f.StartDate != "" {
		q.Set("startDate", f.StartDate)
	}
	if f.EndDate != "" {
		q.Set("endDate", f.EndDate)
	}
	return q
}

// ParseFilter rebuilds a filter from query parameters. Unparseable paging
// values fall back to the defaults rather than failing, matching how the list
// view treats a hand-edited address bar.
func ParseFilter(q url.Values) ListFilter {
	f := ListFilter{
		Page:          parsePositiveInt(q.Get("page"), DefaultPage),
		Limit:         parsePositiveInt(q.Get("limit"), DefaultLimit),
		CustomerName:  q.Get("search"),
		PaymentStatus: PaymentStatus(q.Get("paymentStatus")),
		StartDate:     q.Get("startDate"),
		EndDate:       q.Get("endDate"),
	}
	return f
}

func parsePositiveInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// ParsePercent turns operator input into a percentage value. Non-numeric or
// NaN input coerces to 0 so a stray keystroke never reaches the server as
// garbage.
func ParsePercent(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
