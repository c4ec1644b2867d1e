// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-miniapp/backend/internal/domain/entity"
)

// AddRecordRequest represents the request body for appending a ledger record.
type AddRecordRequest struct {
	UserID      int64   `json:"user_id" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description,omitempty" binding:"omitempty,max=255"`
	CategoryID  *string `json:"category_id,omitempty"`
}

// UpdateRecordRequest represents the request body for editing a record. Any
// subset of the editable fields may be supplied; omitted fields keep their
// prior values.
type UpdateRecordRequest struct {
	Type          *string  `json:"type,omitempty"`
	Amount        *float64 `json:"amount,omitempty"`
	Description   *string  `json:"description,omitempty" binding:"omitempty,max=255"`
	CategoryID    *string  `json:"category_id,omitempty"`
	ClearCategory bool     `json:"clear_category,omitempty"`
}

// RecordResponse represents a single ledger record in API responses.
type RecordResponse struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Amount       float64   `json:"amount"`
	Description  string    `json:"description"`
	CategoryID   *string   `json:"category_id"`
	CreatedAt    time.Time `json:"created_at"`
	CategoryName *string   `json:"category_name"`
}

// ToRecordResponse converts a RecordWithCategory entity to a RecordResponse DTO.
func ToRecordResponse(rwc *entity.RecordWithCategory) RecordResponse {
	var categoryID *string
	if rwc.Record.CategoryID != nil {
		id := rwc.Record.CategoryID.String()
		categoryID = &id
	}

	return RecordResponse{
		ID:           rwc.Record.ID.String(),
		Type:         string(rwc.Record.Kind),
		Amount:       rwc.Record.Amount.InexactFloat64(),
		Description:  rwc.Record.Description,
		CategoryID:   categoryID,
		CreatedAt:    rwc.Record.CreatedAt,
		CategoryName: rwc.CategoryName,
	}
}

// ToRecordListResponse converts RecordWithCategory entities to response DTOs.
func ToRecordListResponse(records []*entity.RecordWithCategory) []RecordResponse {
	responses := make([]RecordResponse, len(records))
	for i, r := range records {
		responses[i] = ToRecordResponse(r)
	}
	return responses
}
