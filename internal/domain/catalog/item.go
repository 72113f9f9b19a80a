package catalog

import (
	"context"

	"github.com/orderdesk/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ErrCatalogUnavailable indicates the catalog store could not be reached or queried.
// Wrap it with the driver error so diagnostics survive to the API boundary.
var ErrCatalogUnavailable = shared.NewDomainError("CATALOG_UNAVAILABLE", "Catalog store unreachable or query failed")

// Item is a read-only snapshot of one catalog row. Items are never written by
// this service; their lifetime is the length of a single catalog query.
type Item struct {
	Code  string
	Name  string
	Price decimal.Decimal
}

// ItemRepository reads items from the catalog store
type ItemRepository interface {
	// ListItems returns the full item table. No pagination or filtering;
	// every call re-reads the table.
	ListItems(ctx context.Context) ([]Item, error)
}
