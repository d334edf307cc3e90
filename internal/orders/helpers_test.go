package orders_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kbamnote/patil-admin/internal/api"
	"github.com/kbamnote/patil-admin/internal/orders"
	"github.com/kbamnote/patil-admin/internal/session"
)

// newRepo spins up a mock API server and returns a repository talking to it
// with a valid session attached.
func newRepo(t *testing.T, handler http.HandlerFunc) *orders.Repository {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	gw := api.New(server.URL, 5*time.Second, session.NewMemoryStoreWithToken("test-token", "admin"))
	return orders.NewRepository(gw)
}

func writeEnvelope(w http.ResponseWriter, status int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// sampleOrder returns a consistent wire-format order: two lines summing to a
// subtotal of 1000 with 18% GST and no discount.
func sampleOrder(id string) map[string]any {
	return map[string]any{
		"_id":          id,
		"billNumber":   "BILL-2026-0042",
		"customerName": "Asha Sharma",
		"tableNumber":  "7",
		"partySize":    4,
		"orderItems": []map[string]any{
			{"itemName": "Paneer Tikka", "category": "starter", "quantity": 2, "unitPrice": 250.0, "totalPrice": 500.0},
			{"itemName": "Butter Naan", "category": "bread", "quantity": 5, "unitPrice": 100.0, "totalPrice": 500.0},
		},
		"subtotal":           1000.0,
		"discountPercentage": 0.0,
		"discountAmount":     0.0,
		"gstPercentage":      18.0,
		"gstAmount":          180.0,
		"totalAmount":        1180.0,
		"paymentStatus":      "pending",
		"paymentMethod":      "cash",
		"billDate":           "2026-08-20T12:30:00Z",
		"createdAt":          "2026-08-20T12:30:00Z",
		"updatedAt":          "2026-08-20T12:30:00Z",
		"createdBy":          map[string]any{"_id": "u1", "name": "Ravi"},
	}
}
