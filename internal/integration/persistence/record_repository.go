// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-miniapp/backend/internal/application/adapter"
	"github.com/finance-miniapp/backend/internal/domain/entity"
	"github.com/finance-miniapp/backend/internal/integration/persistence/model"
)

// recordRepository implements the adapter.RecordRepository interface.
type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository creates a new record repository instance.
func NewRecordRepository(db *gorm.DB) adapter.RecordRepository {
	return &recordRepository{
		db: db,
	}
}

// Create appends a new record to the ledger.
func (r *recordRepository) Create(ctx context.Context, record *entity.Record) error {
	recordModel := model.RecordFromEntity(record)
	result := r.db.WithContext(ctx).Create(recordModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Update applies a partial edit to the record with the given id. Only kind,
// amount, description and category_id are editable; zero rows affected is a
// success, matching UPDATE ... WHERE id=? semantics.
func (r *recordRepository) Update(ctx context.Context, id uuid.UUID, changes adapter.RecordChanges) error {
	updates := map[string]interface{}{}
	if changes.Kind != nil {
		updates["kind"] = string(*changes.Kind)
	}
	if changes.Amount != nil {
		updates["amount"] = *changes.Amount
	}
	if changes.Description != nil {
		updates["description"] = *changes.Description
	}
	if changes.ClearCategory {
		updates["category_id"] = nil
	} else if changes.CategoryID != nil {
		updates["category_id"] = *changes.CategoryID
	}

	if len(updates) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&model.RecordModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUser retrieves up to limit records for the user, newest created_at
// first. Ties are broken by id so the order stays deterministic.
func (r *recordRepository) FindByUser(ctx context.Context, userID int64, limit int) ([]*entity.RecordWithCategory, error) {
	var recordModels []model.RecordModel
	result := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&recordModels)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.RecordWithCategory, len(recordModels))
	for i, rm := range recordModels {
		records[i] = rm.ToEntityWithCategory()
	}
	return records, nil
}

// SumByKind sums record amounts per kind over the inclusive [from, to] window.
func (r *recordRepository) SumByKind(ctx context.Context, userID int64, from, to time.Time) (map[entity.RecordKind]decimal.Decimal, error) {
	var rows []struct {
		Kind  string
		Total decimal.Decimal
	}

	result := r.db.WithContext(ctx).
		Model(&model.RecordModel{}).
		Select("kind, COALESCE(SUM(amount), 0) as total").
		Where("user_id = ?", userID).
		Where("created_at >= ? AND created_at <= ?", from, to).
		Group("kind").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	totals := make(map[entity.RecordKind]decimal.Decimal, len(rows))
	for _, row := range rows {
		totals[entity.RecordKind(row.Kind)] = row.Total
	}
	return totals, nil
}
