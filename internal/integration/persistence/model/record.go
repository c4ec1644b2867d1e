// Package model defines database models for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-miniapp/backend/internal/domain/entity"
)

// RecordModel represents the records table in the database.
type RecordModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      int64           `gorm:"not null;index"`
	Kind        string          `gorm:"type:varchar(32);not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description string          `gorm:"type:varchar(255);not null;default:''"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt   time.Time       `gorm:"not null;index"`

	// Loaded via Preload; nil when the record has no category or the
	// reference is dangling. Referential integrity is not enforced.
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the RecordModel.
func (RecordModel) TableName() string {
	return "records"
}

// ToEntity converts a RecordModel to a domain Record entity.
func (m *RecordModel) ToEntity() *entity.Record {
	return &entity.Record{
		ID:          m.ID,
		UserID:      m.UserID,
		Kind:        entity.RecordKind(m.Kind),
		Amount:      m.Amount,
		Description: m.Description,
		CategoryID:  m.CategoryID,
		CreatedAt:   m.CreatedAt,
	}
}

// ToEntityWithCategory converts a RecordModel with its preloaded Category to
// a RecordWithCategory entity.
func (m *RecordModel) ToEntityWithCategory() *entity.RecordWithCategory {
	result := &entity.RecordWithCategory{
		Record: m.ToEntity(),
	}
	if m.Category != nil {
		name := m.Category.Name
		result.CategoryName = &name
	}
	return result
}

// RecordFromEntity creates a RecordModel from a domain Record entity.
func RecordFromEntity(record *entity.Record) *RecordModel {
	return &RecordModel{
		ID:          record.ID,
		UserID:      record.UserID,
		Kind:        string(record.Kind),
		Amount:      record.Amount,
		Description: record.Description,
		CategoryID:  record.CategoryID,
		CreatedAt:   record.CreatedAt,
	}
}
