package ordering

import (
	"strings"
	"time"

	"github.com/orderdesk/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Validation errors for order construction
var (
	ErrEmptyCustomerName = shared.NewDomainError("INVALID_INPUT", "Customer name must not be empty")
	ErrInvalidQuantity   = shared.NewDomainError("INVALID_INPUT", "Line quantity must be a positive integer")
	ErrNegativePrice     = shared.NewDomainError("INVALID_INPUT", "Line unit price must not be negative")
	ErrEmptyItemCode     = shared.NewDomainError("INVALID_INPUT", "Line item code must not be empty")
)

// OrderLine is one item/quantity/price triple within an order. It is a
// snapshot copy of the client's selection, not a live reference to a
// catalog Item.
type OrderLine struct {
	ItemCode  string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Subtotal returns quantity x unit price for this line.
func (l OrderLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Order is constructed entirely from one client request, submitted once to
// the ERP, then discarded. The ERP is the system of record; nothing here is
// persisted locally.
//
// Total is derived: it always equals the sum over lines. Constructors never
// accept an externally supplied total, so a client-sent total can never reach
// the ERP-bound payload.
type Order struct {
	CustomerName string
	Lines        []OrderLine
	Total        decimal.Decimal
	CreatedAt    time.Time
}

// NewOrder validates the customer name and lines and builds an Order with a
// recomputed total.
func NewOrder(customerName string, lines []OrderLine) (*Order, error) {
	if strings.TrimSpace(customerName) == "" {
		return nil, ErrEmptyCustomerName
	}

	total := decimal.Zero
	for _, line := range lines {
		if line.ItemCode == "" {
			return nil, ErrEmptyItemCode
		}
		if line.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		if line.UnitPrice.IsNegative() {
			return nil, ErrNegativePrice
		}
		total = total.Add(line.Subtotal())
	}

	return &Order{
		CustomerName: customerName,
		Lines:        lines,
		Total:        total,
		CreatedAt:    time.Now(),
	}, nil
}
