// Package category contains category registry use cases.
package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/finance-miniapp/backend/internal/application/adapter"
	"github.com/finance-miniapp/backend/internal/domain/entity"
)

// SeedCategoriesUseCase inserts the default categories at first boot.
type SeedCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewSeedCategoriesUseCase creates a new SeedCategoriesUseCase instance.
func NewSeedCategoriesUseCase(categoryRepo adapter.CategoryRepository) *SeedCategoriesUseCase {
	return &SeedCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute seeds the registry with the default categories when it is empty.
// Running against a non-empty registry is a no-op, which makes the seed
// idempotent at the "empty means seed" granularity.
func (uc *SeedCategoriesUseCase) Execute(ctx context.Context) error {
	count, err := uc.categoryRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	defaults := entity.DefaultCategories()
	if err := uc.categoryRepo.CreateBatch(ctx, defaults); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	slog.Info("Seeded default categories", "count", len(defaults))
	return nil
}
