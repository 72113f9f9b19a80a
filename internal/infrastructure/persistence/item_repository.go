package persistence

import (
	"context"
	"fmt"

	"github.com/orderdesk/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// listItemsQuery is the fixed catalog read. No pagination or filtering; the
// whole table is re-read on every call.
const listItemsQuery = `SELECT item_code, item_name, item_price FROM items`

// GormItemRepository implements catalog.ItemRepository using GORM
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GormItemRepository
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// ListItems reads the full item table and maps each row to a catalog.Item.
// The row cursor is released on every exit path, including scan failures.
func (r *GormItemRepository) ListItems(ctx context.Context) ([]catalog.Item, error) {
	rows, err := r.db.WithContext(ctx).Raw(listItemsQuery).Rows()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", catalog.ErrCatalogUnavailable, err)
	}
	defer rows.Close()

	items := make([]catalog.Item, 0)
	for rows.Next() {
		var (
			code  string
			name  string
			price decimal.Decimal
		)
		if err := rows.Scan(&code, &name, &price); err != nil {
			return nil, fmt.Errorf("%w: %v", catalog.ErrCatalogUnavailable, err)
		}
		items = append(items, catalog.Item{Code: code, Name: name, Price: price})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", catalog.ErrCatalogUnavailable, err)
	}

	return items, nil
}

var _ catalog.ItemRepository = (*GormItemRepository)(nil)
