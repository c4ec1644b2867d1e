// Package settings contains user settings use cases.
package settings

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finance-miniapp/backend/internal/application/adapter"
	"github.com/finance-miniapp/backend/internal/domain/entity"
)

// InitUserInput represents the input for initializing a user's settings.
type InitUserInput struct {
	UserID       int64
	Currency     string
	StartBalance decimal.Decimal
}

// InitUserUseCase creates or replaces a user's settings record.
type InitUserUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewInitUserUseCase creates a new InitUserUseCase instance.
func NewInitUserUseCase(settingsRepo adapter.SettingsRepository) *InitUserUseCase {
	return &InitUserUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute upserts the settings record. The write is idempotent: repeating it
// with the same arguments leaves the same stored state.
func (uc *InitUserUseCase) Execute(ctx context.Context, input InitUserInput) error {
	currency := input.Currency
	if currency == "" {
		currency = entity.DefaultCurrency
	}

	record := &entity.UserSettings{
		UserID:       input.UserID,
		Currency:     currency,
		StartBalance: input.StartBalance,
	}

	if err := uc.settingsRepo.Upsert(ctx, record); err != nil {
		return fmt.Errorf("failed to upsert user settings: %w", err)
	}
	return nil
}
