// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/finance-miniapp/backend/internal/domain/entity"

// InitUserRequest represents the request body for user initialization.
type InitUserRequest struct {
	UserID       int64   `json:"user_id" binding:"required"`
	Currency     string  `json:"currency,omitempty"`
	StartBalance float64 `json:"start_balance,omitempty"`
}

// UserSettingsResponse represents the settings of a user in API responses.
type UserSettingsResponse struct {
	Currency     string  `json:"currency"`
	StartBalance float64 `json:"start_balance"`
}

// ToUserSettingsResponse converts a domain UserSettings entity to a
// UserSettingsResponse DTO.
func ToUserSettingsResponse(settings *entity.UserSettings) UserSettingsResponse {
	return UserSettingsResponse{
		Currency:     settings.Currency,
		StartBalance: settings.StartBalance.InexactFloat64(),
	}
}
