package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reelhub/reelhub/internal/application/category/dto"
	"github.com/reelhub/reelhub/internal/application/category/usecases"
	"github.com/reelhub/reelhub/internal/domain/category"
	"github.com/reelhub/reelhub/internal/shared/logger"
	"github.com/reelhub/reelhub/internal/shared/utils"
)

// CategoryHandler handles category HTTP requests
type CategoryHandler struct {
	createUseCase *usecases.CreateCategoryUseCase
	updateUseCase *usecases.UpdateCategoryUseCase
	getUseCase    *usecases.GetCategoryUseCase
	listUseCase   *usecases.ListCategoriesUseCase
	statusUseCase *usecases.UpdateCategoryStatusUseCase
	deleteUseCase *usecases.DeleteCategoryUseCase
	logger        logger.Interface
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(
	createUseCase *usecases.CreateCategoryUseCase,
	updateUseCase *usecases.UpdateCategoryUseCase,
	getUseCase *usecases.GetCategoryUseCase,
	listUseCase *usecases.ListCategoriesUseCase,
	statusUseCase *usecases.UpdateCategoryStatusUseCase,
	deleteUseCase *usecases.DeleteCategoryUseCase,
	logger logger.Interface,
) *CategoryHandler {
	return &CategoryHandler{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		statusUseCase: statusUseCase,
		deleteUseCase: deleteUseCase,
		logger:        logger,
	}
}

// Create handles POST /admin/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
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

// Update handles PATCH /admin/categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateCategoryRequest
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

// Get handles GET /admin/categories/:id
func (h *CategoryHandler) Get(c *gin.Context) {
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

// List handles GET /admin/categories
func (h *CategoryHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)
	req := dto.ListCategoriesRequest{
		Keyword:  c.Query("keyword"),
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

// ListAll handles GET /admin/categories/all
func (h *CategoryHandler) ListAll(c *gin.Context) {
	result, err := h.listUseCase.ExecuteAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Activate handles POST /admin/categories/:id/activate
func (h *CategoryHandler) Activate(c *gin.Context) {
	h.setStatus(c, true)
}

// Deactivate handles POST /admin/categories/:id/deactivate
func (h *CategoryHandler) Deactivate(c *gin.Context) {
	h.setStatus(c, false)
}

func (h *CategoryHandler) setStatus(c *gin.Context, active bool) {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var result *dto.CategoryResponse
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

// Delete handles DELETE /admin/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "category deleted", nil)
}

func (h *CategoryHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, category.ErrCategoryNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, "category not found")
	case errors.Is(err, category.ErrNameExists):
		utils.ErrorResponse(c, http.StatusConflict, "category name already exists")
	default:
		utils.ErrorResponseWithError(c, err)
	}
}
