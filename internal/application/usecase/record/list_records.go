// Package record contains ledger record use cases.
package record

import (
	"context"
	"fmt"

	"github.com/finance-miniapp/backend/internal/application/adapter"
	"github.com/finance-miniapp/backend/internal/domain/entity"
)

// DefaultListLimit caps the listing when the caller does not supply a limit.
const DefaultListLimit = 50

// ListRecordsInput represents the input for listing a user's records.
type ListRecordsInput struct {
	UserID int64
	Limit  int
}

// ListRecordsUseCase handles listing ledger records.
type ListRecordsUseCase struct {
	recordRepo adapter.RecordRepository
}

// NewListRecordsUseCase creates a new ListRecordsUseCase instance.
func NewListRecordsUseCase(recordRepo adapter.RecordRepository) *ListRecordsUseCase {
	return &ListRecordsUseCase{
		recordRepo: recordRepo,
	}
}

// Execute returns the user's records newest first, each joined with its
// category name when the reference resolves.
func (uc *ListRecordsUseCase) Execute(ctx context.Context, input ListRecordsInput) ([]*entity.RecordWithCategory, error) {
	limit := input.Limit
	if limit < 1 {
		limit = DefaultListLimit
	}

	records, err := uc.recordRepo.FindByUser(ctx, input.UserID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return records, nil
}
