package catalog

import (
	"context"

	"github.com/orderdesk/backend/internal/domain/catalog"
	"go.uber.org/zap"
)

// ItemView is the catalog entry shape handed to the API layer
type ItemView struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ItemService exposes catalog read operations
type ItemService struct {
	repo   catalog.ItemRepository
	logger *zap.Logger
}

// NewItemService creates a new ItemService
func NewItemService(repo catalog.ItemRepository, logger *zap.Logger) *ItemService {
	return &ItemService{repo: repo, logger: logger}
}

// ListItems returns every catalog item in presentation form. Prices leave the
// decimal domain here; the API contract is plain JSON numbers.
func (s *ItemService) ListItems(ctx context.Context) ([]ItemView, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		s.logger.Error("catalog read failed", zap.Error(err))
		return nil, err
	}

	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, ItemView{
			ID:    item.Code,
			Name:  item.Name,
			Price: item.Price.InexactFloat64(),
		})
	}
	return views, nil
}
