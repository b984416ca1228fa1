package handler

import (
	"net/http"

	"shifttrack/internal/dto"
	"shifttrack/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{ svc service.DashboardService }

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Data godoc
// @Summary      Dashboard chart data
// @Description  Calendar buckets for the current week (7 days) or month (Sunday-start weeks), plus the weekly summary and next shift.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        period query string false "weekly | monthly"
// @Success      200 {object} dto.DashboardDataResponse
// @Router       /api/dashboard/data [get]
func (h *DashboardHandler) Data(c *gin.Context) {
	var filter dto.DashboardFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.Data(c.Request.Context(), currentUserID(c), filter.Period)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Summary returns AI-generated prose over the user's shift history.
// Failures of the AI service degrade to static text, never to an error.
func (h *DashboardHandler) Summary(c *gin.Context) {
	resp, err := h.svc.Summary(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DashboardHandler) ProcessNotes(c *gin.Context) {
	var req dto.ProcessNotesRequest
	if !bindAndValidate(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.svc.ProcessNotes(c.Request.Context(), req.Notes))
}
