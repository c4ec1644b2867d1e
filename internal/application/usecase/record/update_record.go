// Package record contains ledger record use cases.
package record

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-miniapp/backend/internal/application/adapter"
	"github.com/finance-miniapp/backend/internal/domain/entity"
)

// UpdateRecordInput represents a partial edit of an existing record. Nil
// fields keep their prior values. UserID, id and created_at are never
// editable.
type UpdateRecordInput struct {
	RecordID      uuid.UUID
	Kind          *entity.RecordKind
	Amount        *decimal.Decimal
	Description   *string
	CategoryID    *uuid.UUID
	ClearCategory bool
}

// UpdateRecordUseCase handles in-place record edits.
type UpdateRecordUseCase struct {
	recordRepo adapter.RecordRepository
}

// NewUpdateRecordUseCase creates a new UpdateRecordUseCase instance.
func NewUpdateRecordUseCase(recordRepo adapter.RecordRepository) *UpdateRecordUseCase {
	return &UpdateRecordUseCase{
		recordRepo: recordRepo,
	}
}

// Execute applies the edit. Updating a non-existent record succeeds without
// altering anything: zero rows affected is not an error.
func (uc *UpdateRecordUseCase) Execute(ctx context.Context, input UpdateRecordInput) error {
	changes := adapter.RecordChanges{
		Kind:          input.Kind,
		Amount:        input.Amount,
		Description:   input.Description,
		CategoryID:    input.CategoryID,
		ClearCategory: input.ClearCategory,
	}

	if err := uc.recordRepo.Update(ctx, input.RecordID, changes); err != nil {
		return fmt.Errorf("failed to update record: %w", err)
	}
	return nil
}
