// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordKind represents the kind of a ledger record.
//
// Income and expense are the only kinds the reporting engine aggregates.
// Other values are accepted and stored verbatim but contribute nothing to
// report totals.
type RecordKind string

const (
	RecordKindIncome  RecordKind = "income"
	RecordKindExpense RecordKind = "expense"
)

// Record represents a single monetary event in a user's ledger.
// Records are append-only: id, user_id and created_at never change after
// creation, and no delete operation exists.
type Record struct {
	ID          uuid.UUID
	UserID      int64
	Kind        RecordKind
	Amount      decimal.Decimal
	Description string
	CategoryID  *uuid.UUID
	CreatedAt   time.Time
}

// NewRecord creates a new Record entity stamped with the current instant.
func NewRecord(
	userID int64,
	kind RecordKind,
	amount decimal.Decimal,
	description string,
	categoryID *uuid.UUID,
) *Record {
	return &Record{
		ID:          uuid.New(),
		UserID:      userID,
		Kind:        kind,
		Amount:      amount,
		Description: description,
		CategoryID:  categoryID,
		CreatedAt:   time.Now().UTC(),
	}
}

// RecordWithCategory represents a record joined with its category name.
// CategoryName is nil when the record has no category or the reference is
// dangling.
type RecordWithCategory struct {
	Record       *Record
	CategoryName *string
}
