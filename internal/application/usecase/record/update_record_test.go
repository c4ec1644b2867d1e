// Package record contains ledger record use cases.
package record

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-miniapp/backend/internal/domain/entity"
)

func TestUpdateRecordUseCase_Execute(t *testing.T) {
	t.Run("forwards only the supplied fields", func(t *testing.T) {
		repo := &stubRecordRepo{}
		uc := NewUpdateRecordUseCase(repo)

		recordID := uuid.New()
		amount := decimal.RequireFromString("99.90")

		err := uc.Execute(context.Background(), UpdateRecordInput{
			RecordID: recordID,
			Amount:   &amount,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		changes, ok := repo.updates[recordID]
		if !ok {
			t.Fatal("expected the repository to receive an update")
		}
		if changes.Amount == nil || !changes.Amount.Equal(amount) {
			t.Errorf("expected amount 99.90, got %v", changes.Amount)
		}
		if changes.Kind != nil || changes.Description != nil || changes.CategoryID != nil {
			t.Error("expected untouched fields to stay nil")
		}
	})

	t.Run("clear category is forwarded", func(t *testing.T) {
		repo := &stubRecordRepo{}
		uc := NewUpdateRecordUseCase(repo)

		recordID := uuid.New()
		err := uc.Execute(context.Background(), UpdateRecordInput{
			RecordID:      recordID,
			ClearCategory: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !repo.updates[recordID].ClearCategory {
			t.Error("expected ClearCategory to be set")
		}
	})

	t.Run("kind change is forwarded verbatim", func(t *testing.T) {
		repo := &stubRecordRepo{}
		uc := NewUpdateRecordUseCase(repo)

		recordID := uuid.New()
		kind := entity.RecordKindIncome
		err := uc.Execute(context.Background(), UpdateRecordInput{
			RecordID: recordID,
			Kind:     &kind,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := repo.updates[recordID].Kind
		if got == nil || *got != entity.RecordKindIncome {
			t.Errorf("expected kind income, got %v", got)
		}
	})
}

func TestListRecordsUseCase_Execute(t *testing.T) {
	t.Run("zero limit falls back to the default", func(t *testing.T) {
		repo := &stubRecordRepo{}
		for i := 0; i < DefaultListLimit+10; i++ {
			rec := entity.NewRecord(12345, entity.RecordKindExpense, decimal.NewFromInt(1), "", nil)
			repo.created = append(repo.created, rec)
		}

		uc := NewListRecordsUseCase(repo)
		records, err := uc.Execute(context.Background(), ListRecordsInput{UserID: 12345})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != DefaultListLimit {
			t.Errorf("expected %d records, got %d", DefaultListLimit, len(records))
		}
	})

	t.Run("explicit limit is respected", func(t *testing.T) {
		repo := &stubRecordRepo{}
		for i := 0; i < 5; i++ {
			rec := entity.NewRecord(12345, entity.RecordKindExpense, decimal.NewFromInt(1), "", nil)
			repo.created = append(repo.created, rec)
		}

		uc := NewListRecordsUseCase(repo)
		records, err := uc.Execute(context.Background(), ListRecordsInput{UserID: 12345, Limit: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 3 {
			t.Errorf("expected 3 records, got %d", len(records))
		}
	})
}
