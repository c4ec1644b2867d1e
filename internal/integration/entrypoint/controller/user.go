// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/finance-miniapp/backend/internal/application/usecase/settings"
	domainerror "github.com/finance-miniapp/backend/internal/domain/error"
	"github.com/finance-miniapp/backend/internal/integration/entrypoint/dto"
)

// UserController handles user settings endpoints.
type UserController struct {
	initUserUseCase    *settings.InitUserUseCase
	getSettingsUseCase *settings.GetSettingsUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	initUserUseCase *settings.InitUserUseCase,
	getSettingsUseCase *settings.GetSettingsUseCase,
) *UserController {
	return &UserController{
		initUserUseCase:    initUserUseCase,
		getSettingsUseCase: getSettingsUseCase,
	}
}

// InitUser handles POST /api/init_user requests.
func (c *UserController) InitUser(ctx *gin.Context) {
	var req dto.InitUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidBody),
		})
		return
	}

	input := settings.InitUserInput{
		UserID:       req.UserID,
		Currency:     req.Currency,
		StartBalance: decimal.NewFromFloat(req.StartBalance),
	}

	if err := c.initUserUseCase.Execute(ctx.Request.Context(), input); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to initialize user",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.OK)
}

// GetUser handles GET /api/get_user requests. An unknown user resolves to
// the default settings, never an error.
func (c *UserController) GetUser(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}

	result, err := c.getSettingsUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve user settings",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserSettingsResponse(result))
}

// parseUserID reads the user_id query parameter, writing a 400 response and
// returning false when it is missing or malformed.
func parseUserID(ctx *gin.Context) (int64, bool) {
	raw := ctx.Query("user_id")
	if raw == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "user_id query parameter is required",
			Code:  string(domainerror.ErrCodeMissingUserID),
		})
		return 0, false
	}

	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "user_id must be an integer",
			Code:  string(domainerror.ErrCodeMissingUserID),
		})
		return 0, false
	}

	return userID, true
}
