// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-miniapp/backend/internal/application/adapter"
	"github.com/finance-miniapp/backend/internal/domain/entity"
)

func TestRecordRepository_CreateAndFindByUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecordRepository(db)
	ctx := context.Background()
	userID := int64(12345)

	base := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	makeRecord := func(amount string, at time.Time) *entity.Record {
		return &entity.Record{
			ID:        uuid.New(),
			UserID:    userID,
			Kind:      entity.RecordKindExpense,
			Amount:    decimal.RequireFromString(amount),
			CreatedAt: at,
		}
	}

	t.Run("newest first with deterministic ties", func(t *testing.T) {
		oldest := makeRecord("1", base)
		newest := makeRecord("2", base.Add(2*time.Hour))
		middle := makeRecord("3", base.Add(time.Hour))
		require.NoError(t, repo.Create(ctx, oldest))
		require.NoError(t, repo.Create(ctx, newest))
		require.NoError(t, repo.Create(ctx, middle))

		records, err := repo.FindByUser(ctx, userID, 10)
		require.NoError(t, err)
		require.Len(t, records, 3)

		assert.Equal(t, newest.ID, records[0].Record.ID)
		assert.Equal(t, middle.ID, records[1].Record.ID)
		assert.Equal(t, oldest.ID, records[2].Record.ID)

		// Two records sharing a timestamp keep a stable relative order.
		tied1 := makeRecord("4", base.Add(3*time.Hour))
		tied2 := makeRecord("5", base.Add(3*time.Hour))
		require.NoError(t, repo.Create(ctx, tied1))
		require.NoError(t, repo.Create(ctx, tied2))

		first, err := repo.FindByUser(ctx, userID, 10)
		require.NoError(t, err)
		second, err := repo.FindByUser(ctx, userID, 10)
		require.NoError(t, err)
		for i := range first {
			assert.Equal(t, first[i].Record.ID, second[i].Record.ID)
		}
	})

	t.Run("limit truncates the listing", func(t *testing.T) {
		records, err := repo.FindByUser(ctx, userID, 2)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("other users are invisible", func(t *testing.T) {
		records, err := repo.FindByUser(ctx, 777, 10)
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestRecordRepository_CategoryJoin(t *testing.T) {
	db := newTestDB(t)
	recordRepo := NewRecordRepository(db)
	categoryRepo := NewCategoryRepository(db)
	ctx := context.Background()

	category := entity.NewCategory("Продукты", nil)
	require.NoError(t, categoryRepo.Create(ctx, category))

	t.Run("category name is joined", func(t *testing.T) {
		rec := entity.NewRecord(1, entity.RecordKindExpense, decimal.NewFromInt(10), "молоко", &category.ID)
		require.NoError(t, recordRepo.Create(ctx, rec))

		records, err := recordRepo.FindByUser(ctx, 1, 10)
		require.NoError(t, err)
		require.Len(t, records, 1)
		require.NotNil(t, records[0].CategoryName)
		assert.Equal(t, "Продукты", *records[0].CategoryName)
	})

	t.Run("dangling reference lists with nil name", func(t *testing.T) {
		missing := uuid.New()
		rec := entity.NewRecord(2, entity.RecordKindExpense, decimal.NewFromInt(10), "", &missing)
		require.NoError(t, recordRepo.Create(ctx, rec))

		records, err := recordRepo.FindByUser(ctx, 2, 10)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Nil(t, records[0].CategoryName)
		require.NotNil(t, records[0].Record.CategoryID)
		assert.Equal(t, missing, *records[0].Record.CategoryID)
	})

	t.Run("no category lists with nil name", func(t *testing.T) {
		rec := entity.NewRecord(3, entity.RecordKindExpense, decimal.NewFromInt(10), "", nil)
		require.NoError(t, recordRepo.Create(ctx, rec))

		records, err := recordRepo.FindByUser(ctx, 3, 10)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Nil(t, records[0].CategoryName)
	})
}

func TestRecordRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecordRepository(db)
	ctx := context.Background()

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		rec := entity.NewRecord(1, entity.RecordKindExpense, decimal.NewFromInt(100), "такси", nil)
		require.NoError(t, repo.Create(ctx, rec))

		amount := decimal.RequireFromString("150")
		require.NoError(t, repo.Update(ctx, rec.ID, adapter.RecordChanges{Amount: &amount}))

		records, err := repo.FindByUser(ctx, 1, 10)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.True(t, records[0].Record.Amount.Equal(amount))
		assert.Equal(t, "такси", records[0].Record.Description)
		assert.Equal(t, entity.RecordKindExpense, records[0].Record.Kind)
	})

	t.Run("non-existent id is a silent no-op", func(t *testing.T) {
		amount := decimal.RequireFromString("1")
		err := repo.Update(ctx, uuid.New(), adapter.RecordChanges{Amount: &amount})
		assert.NoError(t, err)
	})

	t.Run("empty change set is a no-op", func(t *testing.T) {
		rec := entity.NewRecord(2, entity.RecordKindExpense, decimal.NewFromInt(5), "", nil)
		require.NoError(t, repo.Create(ctx, rec))

		require.NoError(t, repo.Update(ctx, rec.ID, adapter.RecordChanges{}))

		records, err := repo.FindByUser(ctx, 2, 10)
		require.NoError(t, err)
		assert.True(t, records[0].Record.Amount.Equal(decimal.NewFromInt(5)))
	})

	t.Run("clear category removes the reference", func(t *testing.T) {
		categoryID := uuid.New()
		rec := entity.NewRecord(3, entity.RecordKindExpense, decimal.NewFromInt(5), "", &categoryID)
		require.NoError(t, repo.Create(ctx, rec))

		require.NoError(t, repo.Update(ctx, rec.ID, adapter.RecordChanges{ClearCategory: true}))

		records, err := repo.FindByUser(ctx, 3, 10)
		require.NoError(t, err)
		assert.Nil(t, records[0].Record.CategoryID)
	})
}

func TestRecordRepository_SumByKind(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecordRepository(db)
	ctx := context.Background()
	userID := int64(12345)

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	add := func(kind entity.RecordKind, amount string, at time.Time) {
		t.Helper()
		rec := &entity.Record{
			ID:        uuid.New(),
			UserID:    userID,
			Kind:      kind,
			Amount:    decimal.RequireFromString(amount),
			CreatedAt: at,
		}
		require.NoError(t, repo.Create(ctx, rec))
	}

	add(entity.RecordKindIncome, "500", now.Add(-time.Hour))
	add(entity.RecordKindIncome, "250", now.Add(-2*time.Hour))
	add(entity.RecordKindExpense, "200", now.Add(-time.Hour))
	add(entity.RecordKind("transfer"), "9000", now.Add(-time.Hour))
	add(entity.RecordKindIncome, "111", now.AddDate(0, 0, -2))

	t.Run("groups by kind within the window", func(t *testing.T) {
		totals, err := repo.SumByKind(ctx, userID, now.AddDate(0, 0, -1), now)
		require.NoError(t, err)

		assert.True(t, totals[entity.RecordKindIncome].Equal(decimal.RequireFromString("750")))
		assert.True(t, totals[entity.RecordKindExpense].Equal(decimal.RequireFromString("200")))
		assert.True(t, totals[entity.RecordKind("transfer")].Equal(decimal.RequireFromString("9000")))
	})

	t.Run("empty window yields an empty map", func(t *testing.T) {
		totals, err := repo.SumByKind(ctx, userID, now.AddDate(0, 0, 10), now.AddDate(0, 0, 11))
		require.NoError(t, err)
		assert.Empty(t, totals)
	})

	t.Run("window bounds are inclusive", func(t *testing.T) {
		exactly := now.AddDate(0, 0, -2)
		totals, err := repo.SumByKind(ctx, userID, exactly, exactly)
		require.NoError(t, err)
		assert.True(t, totals[entity.RecordKindIncome].Equal(decimal.RequireFromString("111")))
	})
}
