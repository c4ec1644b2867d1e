// Package settings contains user settings use cases.
package settings

import (
	"context"
	"fmt"

	"github.com/finance-miniapp/backend/internal/application/adapter"
	"github.com/finance-miniapp/backend/internal/domain/entity"
)

// GetSettingsUseCase retrieves a user's settings, falling back to defaults.
type GetSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase instance.
func NewGetSettingsUseCase(settingsRepo adapter.SettingsRepository) *GetSettingsUseCase {
	return &GetSettingsUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute returns the stored settings for the user. A user without a record
// resolves to the defaults; this is a successful result, never an error.
func (uc *GetSettingsUseCase) Execute(ctx context.Context, userID int64) (*entity.UserSettings, error) {
	stored, err := uc.settingsRepo.Find(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user settings: %w", err)
	}
	if stored == nil {
		return entity.DefaultUserSettings(userID), nil
	}
	return stored, nil
}
