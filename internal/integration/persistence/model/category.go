// Package model defines database models for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-miniapp/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
// Name carries no unique index: duplicate names are allowed.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(64);not null"`
	Kind      *string   `gorm:"type:varchar(32)"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	var kind *entity.RecordKind
	if m.Kind != nil {
		k := entity.RecordKind(*m.Kind)
		kind = &k
	}

	return &entity.Category{
		ID:        m.ID,
		Name:      m.Name,
		Kind:      kind,
		CreatedAt: m.CreatedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	var kind *string
	if category.Kind != nil {
		k := string(*category.Kind)
		kind = &k
	}

	return &CategoryModel{
		ID:        category.ID,
		Name:      category.Name,
		Kind:      kind,
		CreatedAt: category.CreatedAt,
	}
}
