package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reelhub/reelhub/internal/application/video/dto"
	"github.com/reelhub/reelhub/internal/application/video/usecases"
	"github.com/reelhub/reelhub/internal/domain/video"
	"github.com/reelhub/reelhub/internal/shared/logger"
	"github.com/reelhub/reelhub/internal/shared/utils"
)

// VideoHandler handles video HTTP requests
type VideoHandler struct {
	createUseCase  *usecases.CreateVideoUseCase
	updateUseCase  *usecases.UpdateVideoUseCase
	getUseCase     *usecases.GetVideoUseCase
	listUseCase    *usecases.ListVideosUseCase
	statusUseCase  *usecases.UpdateVideoStatusUseCase
	deleteUseCase  *usecases.DeleteVideoUseCase
	counterUseCase *usecases.IncrementVideoCountersUseCase
	logger         logger.Interface
}

// NewVideoHandler creates a new VideoHandler
func NewVideoHandler(
	createUseCase *usecases.CreateVideoUseCase,
	updateUseCase *usecases.UpdateVideoUseCase,
	getUseCase *usecases.GetVideoUseCase,
	listUseCase *usecases.ListVideosUseCase,
	statusUseCase *usecases.UpdateVideoStatusUseCase,
	deleteUseCase *usecases.DeleteVideoUseCase,
	counterUseCase *usecases.IncrementVideoCountersUseCase,
	logger logger.Interface,
) *VideoHandler {
	return &VideoHandler{
		createUseCase:  createUseCase,
		updateUseCase:  updateUseCase,
		getUseCase:     getUseCase,
		listUseCase:    listUseCase,
		statusUseCase:  statusUseCase,
		deleteUseCase:  deleteUseCase,
		counterUseCase: counterUseCase,
		logger:         logger,
	}
}

// Create handles POST /admin/videos
func (h *VideoHandler) Create(c *gin.Context) {
	var req dto.CreateVideoRequest
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

// Update handles PATCH /admin/videos/:id
func (h *VideoHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateVideoRequest
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

// Get handles GET /admin/videos/:id
func (h *VideoHandler) Get(c *gin.Context) {
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

// List handles GET /admin/videos
func (h *VideoHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)
	req := dto.ListVideosRequest{
		Keyword:    c.Query("keyword"),
		CategoryID: utils.ParseUintQuery(c, "category_id"),
		UserID:     utils.ParseUintQuery(c, "user_id"),
		Ranking:    c.Query("ranking"),
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		SortBy:     c.Query("sort_by"),
		SortDir:    c.Query("sort_dir"),
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Activate handles POST /admin/videos/:id/activate
func (h *VideoHandler) Activate(c *gin.Context) {
	h.setStatus(c, true)
}

// Deactivate handles POST /admin/videos/:id/deactivate
func (h *VideoHandler) Deactivate(c *gin.Context) {
	h.setStatus(c, false)
}

func (h *VideoHandler) setStatus(c *gin.Context, active bool) {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var result *dto.VideoResponse
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

// Delete handles DELETE /admin/videos/:id
func (h *VideoHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "video deleted", nil)
}

// IncrementViews handles POST /admin/videos/:id/views
func (h *VideoHandler) IncrementViews(c *gin.Context) {
	h.incrementCounter(c, h.counterUseCase.IncrementViews)
}

// IncrementLikes handles POST /admin/videos/:id/likes
func (h *VideoHandler) IncrementLikes(c *gin.Context) {
	h.incrementCounter(c, h.counterUseCase.IncrementLikes)
}

func (h *VideoHandler) incrementCounter(c *gin.Context, increment func(ctx context.Context, id uint) (*dto.VideoResponse, error)) {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := increment(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *VideoHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, video.ErrVideoNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, "video not found")
	case errors.Is(err, video.ErrCategoryNotActive):
		utils.ErrorResponse(c, http.StatusBadRequest, "category does not exist or is inactive")
	case errors.Is(err, video.ErrUserNotActive):
		utils.ErrorResponse(c, http.StatusBadRequest, "user does not exist or is inactive")
	default:
		utils.ErrorResponseWithError(c, err)
	}
}
