// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-miniapp/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create persists a new category. Name uniqueness is not checked.
	Create(ctx context.Context, category *entity.Category) error

	// CreateBatch persists several categories in a single write.
	CreateBatch(ctx context.Context, categories []*entity.Category) error

	// FindAll retrieves every category ordered by creation time.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// Count returns the number of categories in the registry.
	Count(ctx context.Context) (int64, error)
}
