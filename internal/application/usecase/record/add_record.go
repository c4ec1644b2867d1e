// Package record contains ledger record use cases.
package record

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-miniapp/backend/internal/application/adapter"
	"github.com/finance-miniapp/backend/internal/domain/entity"
	domainerror "github.com/finance-miniapp/backend/internal/domain/error"
)

// notifyTimeout bounds the single delivery attempt made after a write.
const notifyTimeout = 10 * time.Second

// AddRecordInput represents the input for appending a ledger record.
type AddRecordInput struct {
	UserID      int64
	Kind        entity.RecordKind
	Amount      decimal.Decimal
	Description string
	CategoryID  *uuid.UUID
}

// AddRecordUseCase handles ledger writes and the follow-up notification.
type AddRecordUseCase struct {
	recordRepo adapter.RecordRepository
	notifier   adapter.Notifier
}

// NewAddRecordUseCase creates a new AddRecordUseCase instance.
func NewAddRecordUseCase(recordRepo adapter.RecordRepository, notifier adapter.Notifier) *AddRecordUseCase {
	return &AddRecordUseCase{
		recordRepo: recordRepo,
		notifier:   notifier,
	}
}

// Execute persists the record synchronously, then schedules a best-effort
// notification. The notification runs detached: its outcome never reaches the
// caller, and the write's success is not contingent on it.
func (uc *AddRecordUseCase) Execute(ctx context.Context, input AddRecordInput) (uuid.UUID, error) {
	if input.UserID == 0 {
		return uuid.Nil, domainerror.NewLedgerError(
			domainerror.ErrCodeMissingUserID,
			"user id is required",
			domainerror.ErrMissingUserID,
		)
	}
	if input.Kind == "" {
		return uuid.Nil, domainerror.NewLedgerError(
			domainerror.ErrCodeEmptyRecordKind,
			"record kind is required",
			domainerror.ErrEmptyRecordKind,
		)
	}

	rec := entity.NewRecord(input.UserID, input.Kind, input.Amount, input.Description, input.CategoryID)
	if err := uc.recordRepo.Create(ctx, rec); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create record: %w", err)
	}

	go uc.dispatchNotification(rec)

	return rec.ID, nil
}

// dispatchNotification makes a single delivery attempt with its own context.
// Failures are logged and dropped at this boundary.
func (uc *AddRecordUseCase) dispatchNotification(rec *entity.Record) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	text := fmt.Sprintf("✅ %s %s", capitalize(string(rec.Kind)), rec.Amount.String())
	if err := uc.notifier.Notify(ctx, rec.UserID, text); err != nil {
		slog.Warn("Record notification failed",
			"user_id", rec.UserID,
			"record_id", rec.ID,
			"error", err,
		)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
