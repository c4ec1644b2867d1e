// Package category contains category registry use cases.
package category

import (
	"context"
	"fmt"

	"github.com/finance-miniapp/backend/internal/application/adapter"
	"github.com/finance-miniapp/backend/internal/domain/entity"
)

// ListCategoriesUseCase handles listing the full category registry.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute returns every category in creation order. An empty registry yields
// an empty slice, not an error.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) ([]*entity.Category, error) {
	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
