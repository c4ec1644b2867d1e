// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-miniapp/backend/internal/domain/entity"
)

// SettingsRepository defines the interface for user settings persistence.
type SettingsRepository interface {
	// Upsert creates or fully replaces the settings record for the user in a
	// single logical write.
	Upsert(ctx context.Context, settings *entity.UserSettings) error

	// Find retrieves the settings record for the user, or nil when no record
	// exists. Absence is not an error.
	Find(ctx context.Context, userID int64) (*entity.UserSettings, error)
}
