// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-miniapp/backend/internal/application/usecase/category"
	"github.com/finance-miniapp/backend/internal/domain/entity"
	domainerror "github.com/finance-miniapp/backend/internal/domain/error"
	"github.com/finance-miniapp/backend/internal/integration/entrypoint/dto"
)

// CategoryController handles category registry endpoints.
type CategoryController struct {
	listUseCase   *category.ListCategoriesUseCase
	createUseCase *category.CreateCategoryUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListCategoriesUseCase,
	createUseCase *category.CreateCategoryUseCase,
) *CategoryController {
	return &CategoryController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
	}
}

// List handles GET /api/categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	categories, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve categories",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(categories))
}

// Create handles POST /api/add_category requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	var req dto.AddCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeEmptyCategoryName),
		})
		return
	}

	input := category.CreateCategoryInput{
		Name: req.Name,
	}
	if req.Kind != nil {
		kind := entity.RecordKind(*req.Kind)
		input.Kind = &kind
	}

	if _, err := c.createUseCase.Execute(ctx.Request.Context(), input); err != nil {
		var ledgerErr *domainerror.LedgerError
		if errors.As(err, &ledgerErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: ledgerErr.Message,
				Code:  string(ledgerErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to create category",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.OK)
}
