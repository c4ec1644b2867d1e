// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category represents a transaction tag.
// Name uniqueness is intentionally not enforced: tags are free-form.
type Category struct {
	ID        uuid.UUID
	Name      string
	Kind      *RecordKind // optional scoping to income or expense
	CreatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(name string, kind *RecordKind) *Category {
	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Kind:      kind,
		CreatedAt: time.Now().UTC(),
	}
}

// DefaultCategories returns the categories seeded into an empty registry at
// first boot.
func DefaultCategories() []*Category {
	income := RecordKindIncome
	expense := RecordKindExpense

	seed := []struct {
		name string
		kind *RecordKind
	}{
		{"Зарплата", &income},
		{"Подарки", &income},
		{"Продукты", &expense},
		{"Транспорт", &expense},
		{"Жильё", &expense},
		{"Развлечения", &expense},
		{"Здоровье", &expense},
		{"Кафе", &expense},
	}

	categories := make([]*Category, len(seed))
	for i, s := range seed {
		categories[i] = NewCategory(s.name, s.kind)
	}
	return categories
}
