package ordering

import (
	"context"
	"testing"

	"github.com/orderdesk/backend/internal/domain/erp"
	"github.com/orderdesk/backend/internal/domain/ordering"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubGateway struct {
	docID   erp.DocumentID
	err     error
	calls   int
	lastOrd *ordering.Order
}

func (s *stubGateway) CreateSalesOrder(ctx context.Context, order *ordering.Order) (erp.DocumentID, error) {
	s.calls++
	s.lastOrd = order
	if s.err != nil {
		return 0, s.err
	}
	return s.docID, nil
}

func TestOrderService_SubmitOrder(t *testing.T) {
	validRequest := SubmitOrderRequest{
		CustomerName: "Acme Corp",
		Lines: []SubmitOrderLine{
			{ItemCode: "A1", Quantity: 2, UnitPrice: decimal.RequireFromString("9.99")},
			{ItemCode: "B2", Quantity: 1, UnitPrice: decimal.RequireFromString("100.50")},
		},
	}

	t.Run("submits validated order and returns receipt", func(t *testing.T) {
		gateway := &stubGateway{docID: 1042}
		service := NewOrderService(gateway, zap.NewNop())

		receipt, err := service.SubmitOrder(context.Background(), validRequest)

		require.NoError(t, err)
		assert.Equal(t, 1042, receipt.SapOrderID)
		assert.True(t, receipt.Total.Equal(decimal.RequireFromString("120.48")))
		assert.Equal(t, 1, gateway.calls)
	})

	t.Run("total is derived from lines, never accepted from outside", func(t *testing.T) {
		gateway := &stubGateway{docID: 7}
		service := NewOrderService(gateway, zap.NewNop())

		_, err := service.SubmitOrder(context.Background(), validRequest)

		require.NoError(t, err)
		assert.True(t, gateway.lastOrd.Total.Equal(decimal.RequireFromString("120.48")))
	})

	t.Run("invalid order never reaches the gateway", func(t *testing.T) {
		gateway := &stubGateway{docID: 7}
		service := NewOrderService(gateway, zap.NewNop())

		_, err := service.SubmitOrder(context.Background(), SubmitOrderRequest{
			CustomerName: "  ",
			Lines:        validRequest.Lines,
		})

		assert.ErrorIs(t, err, ordering.ErrEmptyCustomerName)
		assert.Equal(t, 0, gateway.calls)
	})

	t.Run("gateway errors pass through", func(t *testing.T) {
		gateway := &stubGateway{err: erp.ErrOrderSubmissionFailed}
		service := NewOrderService(gateway, zap.NewNop())

		receipt, err := service.SubmitOrder(context.Background(), validRequest)

		assert.Nil(t, receipt)
		assert.ErrorIs(t, err, erp.ErrOrderSubmissionFailed)
	})
}
