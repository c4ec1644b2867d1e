// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-miniapp/backend/internal/application/usecase/record"
	"github.com/finance-miniapp/backend/internal/domain/entity"
	domainerror "github.com/finance-miniapp/backend/internal/domain/error"
	"github.com/finance-miniapp/backend/internal/integration/entrypoint/dto"
)

// RecordController handles ledger endpoints.
type RecordController struct {
	addUseCase    *record.AddRecordUseCase
	updateUseCase *record.UpdateRecordUseCase
	listUseCase   *record.ListRecordsUseCase
}

// NewRecordController creates a new record controller instance.
func NewRecordController(
	addUseCase *record.AddRecordUseCase,
	updateUseCase *record.UpdateRecordUseCase,
	listUseCase *record.ListRecordsUseCase,
) *RecordController {
	return &RecordController{
		addUseCase:    addUseCase,
		updateUseCase: updateUseCase,
		listUseCase:   listUseCase,
	}
}

// Add handles POST /api/add requests. The write is synchronous; the
// follow-up notification is dispatched in the background and never affects
// the response.
func (c *RecordController) Add(ctx *gin.Context) {
	var req dto.AddRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidBody),
		})
		return
	}

	input := record.AddRecordInput{
		UserID:      req.UserID,
		Kind:        entity.RecordKind(req.Type),
		Amount:      decimal.NewFromFloat(req.Amount),
		Description: req.Description,
	}

	if req.CategoryID != nil && *req.CategoryID != "" {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID format",
				Code:  string(domainerror.ErrCodeInvalidBody),
			})
			return
		}
		input.CategoryID = &categoryID
	}

	if _, err := c.addUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleLedgerError(ctx, err, "Failed to add record")
		return
	}

	ctx.JSON(http.StatusOK, dto.OK)
}

// Update handles PUT /api/update/:record_id requests. An unknown record id
// is acknowledged without changing anything.
func (c *RecordController) Update(ctx *gin.Context) {
	recordID, err := uuid.Parse(ctx.Param("record_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid record ID format",
			Code:  string(domainerror.ErrCodeInvalidRecordID),
		})
		return
	}

	var req dto.UpdateRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidBody),
		})
		return
	}

	input := record.UpdateRecordInput{
		RecordID:      recordID,
		Description:   req.Description,
		ClearCategory: req.ClearCategory,
	}
	if req.Type != nil {
		kind := entity.RecordKind(*req.Type)
		input.Kind = &kind
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if req.CategoryID != nil && *req.CategoryID != "" {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID format",
				Code:  string(domainerror.ErrCodeInvalidBody),
			})
			return
		}
		input.CategoryID = &categoryID
	}

	if err := c.updateUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleLedgerError(ctx, err, "Failed to update record")
		return
	}

	ctx.JSON(http.StatusOK, dto.OK)
}

// List handles GET /api/records requests.
func (c *RecordController) List(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}

	limit := record.DefaultListLimit
	if raw := ctx.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	records, err := c.listUseCase.Execute(ctx.Request.Context(), record.ListRecordsInput{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve records",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecordListResponse(records))
}

// handleLedgerError maps ledger errors to HTTP responses.
func (c *RecordController) handleLedgerError(ctx *gin.Context, err error, fallback string) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: fallback,
	})
}
