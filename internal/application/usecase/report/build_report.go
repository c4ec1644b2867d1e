// Package report contains the balance reporting use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-miniapp/backend/internal/application/adapter"
	"github.com/finance-miniapp/backend/internal/domain/entity"
)

// BuildReportInput represents the input for building a balance snapshot.
type BuildReportInput struct {
	UserID int64
	Period Period
}

// Snapshot is the computed point-in-time financial summary for one window.
type Snapshot struct {
	PeriodLabel  string
	Income       decimal.Decimal
	Expense      decimal.Decimal
	Balance      decimal.Decimal
	StartBalance decimal.Decimal
}

// BuildReportUseCase aggregates the ledger within a window and combines the
// result with the user's settings baseline.
type BuildReportUseCase struct {
	recordRepo   adapter.RecordRepository
	settingsRepo adapter.SettingsRepository
	now          func() time.Time
}

// NewBuildReportUseCase creates a new BuildReportUseCase instance.
func NewBuildReportUseCase(recordRepo adapter.RecordRepository, settingsRepo adapter.SettingsRepository) *BuildReportUseCase {
	return &BuildReportUseCase{
		recordRepo:   recordRepo,
		settingsRepo: settingsRepo,
		now:          time.Now,
	}
}

// WithClock overrides the time source. Used by tests to pin the window anchor.
func (uc *BuildReportUseCase) WithClock(now func() time.Time) *BuildReportUseCase {
	uc.now = now
	return uc
}

// Execute builds the snapshot:
//
//	balance = start_balance + Σ income − Σ expense
//
// over records whose created_at falls inside the resolved window, inclusive
// on both ends. Kinds other than income and expense are excluded from both
// sums. A user with no settings record contributes a zero baseline.
func (uc *BuildReportUseCase) Execute(ctx context.Context, input BuildReportInput) (*Snapshot, error) {
	window := ResolveWindow(uc.now(), input.Period)

	totals, err := uc.recordRepo.SumByKind(ctx, input.UserID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate records: %w", err)
	}

	income := totals[entity.RecordKindIncome]
	expense := totals[entity.RecordKindExpense]

	startBalance := decimal.Zero
	settings, err := uc.settingsRepo.Find(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings baseline: %w", err)
	}
	if settings != nil {
		startBalance = settings.StartBalance
	}

	return &Snapshot{
		PeriodLabel:  window.Label,
		Income:       income,
		Expense:      expense,
		Balance:      startBalance.Add(income).Sub(expense),
		StartBalance: startBalance,
	}, nil
}
