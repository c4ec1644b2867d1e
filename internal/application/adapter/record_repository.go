// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-miniapp/backend/internal/domain/entity"
)

// RecordChanges describes a partial edit of a ledger record. Nil fields keep
// their prior values. ClearCategory removes the category reference.
type RecordChanges struct {
	Kind          *entity.RecordKind
	Amount        *decimal.Decimal
	Description   *string
	CategoryID    *uuid.UUID
	ClearCategory bool
}

// RecordRepository defines the interface for ledger persistence operations.
type RecordRepository interface {
	// Create appends a new record to the ledger.
	Create(ctx context.Context, record *entity.Record) error

	// Update applies a partial edit to the record with the given id.
	// A non-existent id is a silent no-op, not an error.
	Update(ctx context.Context, id uuid.UUID, changes RecordChanges) error

	// FindByUser retrieves up to limit records for the user, newest
	// created_at first, with category names joined.
	FindByUser(ctx context.Context, userID int64, limit int) ([]*entity.RecordWithCategory, error)

	// SumByKind sums record amounts per kind for the user over the inclusive
	// [from, to] window. Kinds with no rows are absent from the result.
	SumByKind(ctx context.Context, userID int64, from, to time.Time) (map[entity.RecordKind]decimal.Decimal, error)
}
