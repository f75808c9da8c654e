package handlers

import (
	"net/http"

	"github.com/SscSPs/freight_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/freight_management_app/internal/core/ports/services"
	"github.com/SscSPs/freight_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type dashboardHandler struct {
	dashboardService portssvc.DashboardService
}

func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardService) {
	h := &dashboardHandler{dashboardService: dashboardService}
	rg.GET("/dashboard", middleware.RequireSection(domain.SectionDashboard), h.getSummary)
}

// getSummary godoc
// @Summary Dashboard summary
// @Description Customer and shipment counts with shipment value totals.
// @Tags dashboard
// @Produce  json
// @Success 200 {object} domain.DashboardSummary
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to load dashboard"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *dashboardHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.dashboardService.GetSummary(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to load dashboard")
		return
	}
	c.JSON(http.StatusOK, summary)
}
