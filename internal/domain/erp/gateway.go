package erp

import (
	"context"

	"github.com/orderdesk/backend/internal/domain/ordering"
	"github.com/orderdesk/backend/internal/domain/shared"
)

// Gateway errors. Both are wrapped with the upstream status/message before
// crossing the API boundary.
var (
	ErrAuthenticationFailed  = shared.NewDomainError("AUTHENTICATION_FAILED", "ERP login rejected or unreachable")
	ErrOrderSubmissionFailed = shared.NewDomainError("ORDER_SUBMISSION_FAILED", "ERP order creation rejected or unreachable")
)

// DocumentID is the ERP-assigned identifier of a created sales order.
type DocumentID int

// OrderGateway submits composed orders to the external ERP system.
type OrderGateway interface {
	// CreateSalesOrder posts the order to the ERP and returns the document
	// identifier the ERP assigned to it. The gateway owns session handling;
	// callers never see tokens.
	CreateSalesOrder(ctx context.Context, order *ordering.Order) (DocumentID, error)
}
