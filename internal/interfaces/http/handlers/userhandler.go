package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reelhub/reelhub/internal/application/user/dto"
	"github.com/reelhub/reelhub/internal/application/user/usecases"
	"github.com/reelhub/reelhub/internal/domain/user"
	"github.com/reelhub/reelhub/internal/shared/logger"
	"github.com/reelhub/reelhub/internal/shared/utils"
)

// UserHandler handles user HTTP requests
type UserHandler struct {
	createUseCase *usecases.CreateUserUseCase
	updateUseCase *usecases.UpdateUserUseCase
	getUseCase    *usecases.GetUserUseCase
	listUseCase   *usecases.ListUsersUseCase
	statusUseCase *usecases.UpdateUserStatusUseCase
	deleteUseCase *usecases.DeleteUserUseCase
	logger        logger.Interface
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(
	createUseCase *usecases.CreateUserUseCase,
	updateUseCase *usecases.UpdateUserUseCase,
	getUseCase *usecases.GetUserUseCase,
	listUseCase *usecases.ListUsersUseCase,
	statusUseCase *usecases.UpdateUserStatusUseCase,
	deleteUseCase *usecases.DeleteUserUseCase,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		statusUseCase: statusUseCase,
		deleteUseCase: deleteUseCase,
		logger:        logger,
	}
}

// Create handles POST /admin/users
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, bindingErrorMessage(err))
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// Update handles PATCH /admin/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, bindingErrorMessage(err))
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Get handles GET /admin/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// List handles GET /admin/users
func (h *UserHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)
	req := dto.ListUsersRequest{
		Keyword:  c.Query("keyword"),
		Role:     c.Query("role"),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
		SortBy:   c.Query("sort_by"),
		SortDir:  c.Query("sort_dir"),
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Activate handles POST /admin/users/:id/activate
func (h *UserHandler) Activate(c *gin.Context) {
	h.setStatus(c, true)
}

// Deactivate handles POST /admin/users/:id/deactivate
func (h *UserHandler) Deactivate(c *gin.Context) {
	h.setStatus(c, false)
}

func (h *UserHandler) setStatus(c *gin.Context, active bool) {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var result *dto.UserResponse
	if active {
		result, err = h.statusUseCase.Activate(c.Request.Context(), id)
	} else {
		result, err = h.statusUseCase.Deactivate(c.Request.Context(), id)
	}
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Delete handles DELETE /admin/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "user deleted", nil)
}

func (h *UserHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, "user not found")
	case errors.Is(err, user.ErrUsernameExists):
		utils.ErrorResponse(c, http.StatusConflict, "username already exists")
	case errors.Is(err, user.ErrEmailExists):
		utils.ErrorResponse(c, http.StatusConflict, "email already exists")
	default:
		utils.ErrorResponseWithError(c, err)
	}
}
