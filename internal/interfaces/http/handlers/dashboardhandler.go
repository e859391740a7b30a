package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reelhub/reelhub/internal/application/dashboard/usecases"
	"github.com/reelhub/reelhub/internal/shared/logger"
	"github.com/reelhub/reelhub/internal/shared/utils"
)

// DashboardHandler handles the admin dashboard HTTP requests
type DashboardHandler struct {
	getDashboardUseCase *usecases.GetDashboardUseCase
	logger              logger.Interface
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(
	getDashboardUseCase *usecases.GetDashboardUseCase,
	logger logger.Interface,
) *DashboardHandler {
	return &DashboardHandler{
		getDashboardUseCase: getDashboardUseCase,
		logger:              logger,
	}
}

// GetDashboard handles GET / and GET /admin
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	result, err := h.getDashboardUseCase.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to get dashboard", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
