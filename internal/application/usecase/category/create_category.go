// Package category contains category registry use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-miniapp/backend/internal/application/adapter"
	"github.com/finance-miniapp/backend/internal/domain/entity"
	domainerror "github.com/finance-miniapp/backend/internal/domain/error"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name string
	Kind *entity.RecordKind
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute creates a category. Any non-empty name is accepted; duplicate names
// are allowed.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (uuid.UUID, error) {
	if input.Name == "" {
		return uuid.Nil, domainerror.NewLedgerError(
			domainerror.ErrCodeEmptyCategoryName,
			"category name must not be empty",
			domainerror.ErrEmptyCategoryName,
		)
	}

	category := entity.NewCategory(input.Name, input.Kind)
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category.ID, nil
}
