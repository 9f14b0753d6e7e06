package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaanb/campuscore/internal/app/models/dto"
	"github.com/kaanb/campuscore/internal/app/services"
	"github.com/kaanb/campuscore/internal/middleware"
)

// DashboardController serves the aggregate counts endpoint.
type DashboardController struct {
	dashboardService services.DashboardService
}

// NewDashboardController creates a new DashboardController.
func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetDashboard handles GET /dashboard. The filter query parameter accepts
// today, week, month, custom (with startDate and endDate) or all.
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	response, err := c.dashboardService.GetDashboard(ctx,
		ctx.Query("filter"), ctx.Query("startDate"), ctx.Query("endDate"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(response))
}
