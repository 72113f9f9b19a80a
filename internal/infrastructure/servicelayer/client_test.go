package servicelayer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/orderdesk/backend/internal/domain/erp"
	"github.com/orderdesk/backend/internal/domain/ordering"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeServiceLayer is an in-process Service Layer double tracking call counts
type fakeServiceLayer struct {
	server       *httptest.Server
	loginCalls   atomic.Int32
	orderCalls   atomic.Int32
	failLogin    bool
	rejectOrders atomic.Int32 // number of order calls to answer with 401
	lastOrder    orderDocument
	lastCookie   string
}

func newFakeServiceLayer(t *testing.T) *fakeServiceLayer {
	f := &fakeServiceLayer{}
	mux := http.NewServeMux()
	mux.HandleFunc("/b1s/v1/Login", func(w http.ResponseWriter, r *http.Request) {
		n := f.loginCalls.Add(1)
		if f.failLogin {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{
					"code":    301,
					"message": map[string]string{"value": "Invalid session or login credentials"},
				},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{
			"SessionId": "session-" + string(rune('0'+n)),
		})
	})
	mux.HandleFunc("/b1s/v1/Orders", func(w http.ResponseWriter, r *http.Request) {
		f.orderCalls.Add(1)
		f.lastCookie = r.Header.Get("Cookie")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&f.lastOrder))
		if f.rejectOrders.Add(-1) >= 0 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]int{"DocEntry": 1042})
	})
	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func newTestClient(t *testing.T, f *fakeServiceLayer) *Client {
	cfg := NewConfig(f.server.URL+"/b1s/v1/", "TESTDB", "manager", "secret")
	client, err := NewClient(cfg, zap.NewNop())
	require.NoError(t, err)
	return client
}

func testOrder(t *testing.T) *ordering.Order {
	order, err := ordering.NewOrder("Acme Corp", []ordering.OrderLine{
		{ItemCode: "A1", Quantity: 2, UnitPrice: decimal.RequireFromString("9.99")},
		{ItemCode: "B2", Quantity: 1, UnitPrice: decimal.RequireFromString("100.50")},
	})
	require.NoError(t, err)
	return order
}

func TestClient_CreateSalesOrder(t *testing.T) {
	t.Run("cold start logs in once then submits", func(t *testing.T) {
		fake := newFakeServiceLayer(t)
		client := newTestClient(t, fake)

		id, err := client.CreateSalesOrder(context.Background(), testOrder(t))

		require.NoError(t, err)
		assert.Equal(t, erp.DocumentID(1042), id)
		assert.Equal(t, int32(1), fake.loginCalls.Load())
		assert.Equal(t, int32(1), fake.orderCalls.Load())
		assert.Equal(t, "B1SESSION=session-1", fake.lastCookie)
	})

	t.Run("warm session skips login", func(t *testing.T) {
		fake := newFakeServiceLayer(t)
		client := newTestClient(t, fake)

		_, err := client.CreateSalesOrder(context.Background(), testOrder(t))
		require.NoError(t, err)
		_, err = client.CreateSalesOrder(context.Background(), testOrder(t))
		require.NoError(t, err)

		assert.Equal(t, int32(1), fake.loginCalls.Load())
		assert.Equal(t, int32(2), fake.orderCalls.Load())
	})

	t.Run("document carries lines but no total", func(t *testing.T) {
		fake := newFakeServiceLayer(t)
		client := newTestClient(t, fake)

		_, err := client.CreateSalesOrder(context.Background(), testOrder(t))
		require.NoError(t, err)

		doc := fake.lastOrder
		assert.Equal(t, "Acme Corp", doc.CardCode)
		assert.NotEmpty(t, doc.DocDate)
		assert.Equal(t, doc.DocDate, doc.DocDueDate)
		require.Len(t, doc.DocumentLines, 2)
		assert.Equal(t, documentLine{ItemCode: "A1", Quantity: 2, UnitPrice: 9.99}, doc.DocumentLines[0])
		assert.Equal(t, documentLine{ItemCode: "B2", Quantity: 1, UnitPrice: 100.50}, doc.DocumentLines[1])
	})

	t.Run("login failure blocks submission", func(t *testing.T) {
		fake := newFakeServiceLayer(t)
		fake.failLogin = true
		client := newTestClient(t, fake)

		_, err := client.CreateSalesOrder(context.Background(), testOrder(t))

		assert.ErrorIs(t, err, erp.ErrAuthenticationFailed)
		assert.Contains(t, err.Error(), "Invalid session or login credentials")
		assert.Equal(t, int32(0), fake.orderCalls.Load(), "no order call without a session")
	})

	t.Run("rejected session triggers exactly one retry", func(t *testing.T) {
		fake := newFakeServiceLayer(t)
		fake.rejectOrders.Store(1)
		client := newTestClient(t, fake)

		id, err := client.CreateSalesOrder(context.Background(), testOrder(t))

		require.NoError(t, err)
		assert.Equal(t, erp.DocumentID(1042), id)
		assert.Equal(t, int32(2), fake.loginCalls.Load())
		assert.Equal(t, int32(2), fake.orderCalls.Load())
		assert.Equal(t, "B1SESSION=session-2", fake.lastCookie, "retry must use the fresh session")
	})

	t.Run("second rejection is not retried again", func(t *testing.T) {
		fake := newFakeServiceLayer(t)
		fake.rejectOrders.Store(2)
		client := newTestClient(t, fake)

		_, err := client.CreateSalesOrder(context.Background(), testOrder(t))

		assert.ErrorIs(t, err, erp.ErrOrderSubmissionFailed)
		assert.Equal(t, int32(2), fake.orderCalls.Load())
	})

	t.Run("upstream rejection carries the service layer message", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/Login", func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{"SessionId": "s"})
		})
		mux.HandleFunc("/Orders", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{
					"code":    -5002,
					"message": map[string]string{"value": "Item no. is missing"},
				},
			})
		})
		server := httptest.NewServer(mux)
		t.Cleanup(server.Close)

		client, err := NewClient(NewConfig(server.URL, "TESTDB", "manager", "secret"), zap.NewNop())
		require.NoError(t, err)

		_, err = client.CreateSalesOrder(context.Background(), testOrder(t))

		assert.ErrorIs(t, err, erp.ErrOrderSubmissionFailed)
		assert.Contains(t, err.Error(), "Item no. is missing")
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("rejects missing fields", func(t *testing.T) {
		assert.ErrorIs(t, NewConfig("", "DB", "u", "p").Validate(), ErrConfigMissingBaseURL)
		assert.ErrorIs(t, NewConfig("http://sl", "", "u", "p").Validate(), ErrConfigMissingCompanyDB)
		assert.ErrorIs(t, NewConfig("http://sl", "DB", "", "p").Validate(), ErrConfigMissingUsername)
		assert.ErrorIs(t, NewConfig("http://sl", "DB", "u", "").Validate(), ErrConfigMissingPassword)
	})

	t.Run("trims trailing slash and applies timeout default", func(t *testing.T) {
		cfg := NewConfig("http://sl/b1s/v1/", "DB", "u", "p")
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "http://sl/b1s/v1", cfg.BaseURL)
		assert.Equal(t, DefaultTimeoutSeconds, cfg.TimeoutSeconds)
	})
}
