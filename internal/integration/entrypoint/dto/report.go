// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/finance-miniapp/backend/internal/application/usecase/report"

// ReportResponse represents a balance snapshot in API responses.
type ReportResponse struct {
	PeriodLabel  string  `json:"period_label"`
	Income       float64 `json:"income"`
	Expense      float64 `json:"expense"`
	Balance      float64 `json:"balance"`
	StartBalance float64 `json:"start_balance"`
}

// ToReportResponse converts a report Snapshot to a ReportResponse DTO.
func ToReportResponse(snapshot *report.Snapshot) ReportResponse {
	return ReportResponse{
		PeriodLabel:  snapshot.PeriodLabel,
		Income:       snapshot.Income.InexactFloat64(),
		Expense:      snapshot.Expense.InexactFloat64(),
		Balance:      snapshot.Balance.InexactFloat64(),
		StartBalance: snapshot.StartBalance.InexactFloat64(),
	}
}
