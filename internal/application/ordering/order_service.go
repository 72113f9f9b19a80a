package ordering

import (
	"context"

	"github.com/orderdesk/backend/internal/domain/erp"
	"github.com/orderdesk/backend/internal/domain/ordering"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SubmitOrderLine is one requested order position
type SubmitOrderLine struct {
	ItemCode  string
	Quantity  int
	UnitPrice decimal.Decimal
}

// SubmitOrderRequest carries everything needed to place an order. Any total
// the caller computed is ignored upstream of this type; the domain recomputes
// it from the lines.
type SubmitOrderRequest struct {
	CustomerName string
	Lines        []SubmitOrderLine
}

// OrderReceipt is the result of a successful submission
type OrderReceipt struct {
	SapOrderID int
	Total      decimal.Decimal
}

// OrderService validates orders and forwards them to the ERP
type OrderService struct {
	gateway erp.OrderGateway
	logger  *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(gateway erp.OrderGateway, logger *zap.Logger) *OrderService {
	return &OrderService{gateway: gateway, logger: logger}
}

// SubmitOrder builds a validated order and creates it in the ERP
func (s *OrderService) SubmitOrder(ctx context.Context, req SubmitOrderRequest) (*OrderReceipt, error) {
	lines := make([]ordering.OrderLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, ordering.OrderLine{
			ItemCode:  l.ItemCode,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}

	order, err := ordering.NewOrder(req.CustomerName, lines)
	if err != nil {
		return nil, err
	}

	docID, err := s.gateway.CreateSalesOrder(ctx, order)
	if err != nil {
		s.logger.Error("order submission failed",
			zap.String("customer", req.CustomerName),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("order submitted",
		zap.String("customer", req.CustomerName),
		zap.Int("doc_entry", int(docID)),
		zap.String("total", order.Total.String()))

	return &OrderReceipt{
		SapOrderID: int(docID),
		Total:      order.Total,
	}, nil
}
