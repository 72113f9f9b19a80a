package catalog

import (
	"context"
	"testing"

	domain "github.com/orderdesk/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubItemRepository struct {
	items []domain.Item
	err   error
}

func (s *stubItemRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.items, nil
}

func TestItemService_ListItems(t *testing.T) {
	t.Run("maps items to views", func(t *testing.T) {
		repo := &stubItemRepository{items: []domain.Item{
			{Code: "A1", Name: "Widget", Price: decimal.RequireFromString("9.99")},
			{Code: "B2", Name: "Gadget", Price: decimal.RequireFromString("100.50")},
		}}
		service := NewItemService(repo, zap.NewNop())

		views, err := service.ListItems(context.Background())

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, ItemView{ID: "A1", Name: "Widget", Price: 9.99}, views[0])
		assert.Equal(t, ItemView{ID: "B2", Name: "Gadget", Price: 100.50}, views[1])
	})

	t.Run("empty catalog yields empty slice", func(t *testing.T) {
		service := NewItemService(&stubItemRepository{}, zap.NewNop())

		views, err := service.ListItems(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		repo := &stubItemRepository{err: domain.ErrCatalogUnavailable}
		service := NewItemService(repo, zap.NewNop())

		views, err := service.ListItems(context.Background())

		assert.Nil(t, views)
		assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
	})
}
