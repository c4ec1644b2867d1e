// Package model defines database models for the persistence layer.
package model

import (
	"github.com/shopspring/decimal"

	"github.com/finance-miniapp/backend/internal/domain/entity"
)

// UserSettingsModel represents the user_settings table in the database.
type UserSettingsModel struct {
	UserID       int64           `gorm:"primaryKey;autoIncrement:false"`
	Currency     string          `gorm:"type:varchar(8);not null"`
	StartBalance decimal.Decimal `gorm:"type:decimal(15,2);not null"`
}

// TableName returns the table name for the UserSettingsModel.
func (UserSettingsModel) TableName() string {
	return "user_settings"
}

// ToEntity converts a UserSettingsModel to a domain UserSettings entity.
func (m *UserSettingsModel) ToEntity() *entity.UserSettings {
	return &entity.UserSettings{
		UserID:       m.UserID,
		Currency:     m.Currency,
		StartBalance: m.StartBalance,
	}
}

// SettingsFromEntity creates a UserSettingsModel from a domain UserSettings entity.
func SettingsFromEntity(settings *entity.UserSettings) *UserSettingsModel {
	return &UserSettingsModel{
		UserID:       settings.UserID,
		Currency:     settings.Currency,
		StartBalance: settings.StartBalance,
	}
}
