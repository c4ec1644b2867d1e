// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// DefaultCurrency is the display currency assumed for users without a
// settings record.
const DefaultCurrency = "₽"

// UserSettings holds the per-user display currency and the starting balance
// baseline. Exactly one record exists per user; absence is a valid state that
// resolves to DefaultUserSettings.
type UserSettings struct {
	UserID       int64
	Currency     string
	StartBalance decimal.Decimal
}

// DefaultUserSettings returns the settings assumed when no record exists for
// the user.
func DefaultUserSettings(userID int64) *UserSettings {
	return &UserSettings{
		UserID:       userID,
		Currency:     DefaultCurrency,
		StartBalance: decimal.Zero,
	}
}
