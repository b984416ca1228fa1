package handler

import (
	"net/http"

	"shifttrack/internal/dto"
	"shifttrack/internal/service"

	"github.com/gin-gonic/gin"
)

type WellnessHandler struct{ svc service.WellnessService }

func NewWellnessHandler(svc service.WellnessService) *WellnessHandler {
	return &WellnessHandler{svc: svc}
}

// ─── Metrics ─────────────────────────────────────────────────────────────────

func (h *WellnessHandler) CreateMetric(c *gin.Context) {
	var req dto.CreateWellnessMetricRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateMetric(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *WellnessHandler) ListMetrics(c *gin.Context) {
	resp, err := h.svc.ListMetrics(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WellnessHandler) GetMetric(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.GetMetric(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WellnessHandler) UpdateMetric(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateWellnessMetricRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateMetric(c.Request.Context(), currentUserID(c), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WellnessHandler) DeleteMetric(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteMetric(c.Request.Context(), currentUserID(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ─── Goals ───────────────────────────────────────────────────────────────────

func (h *WellnessHandler) CreateGoal(c *gin.Context) {
	var req dto.CreateWellnessGoalRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateGoal(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *WellnessHandler) ListGoals(c *gin.Context) {
	resp, err := h.svc.ListGoals(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WellnessHandler) GetGoal(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.GetGoal(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WellnessHandler) UpdateGoal(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateWellnessGoalRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateGoal(c.Request.Context(), currentUserID(c), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WellnessHandler) DeleteGoal(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteGoal(c.Request.Context(), currentUserID(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Summary godoc
// @Summary      Wellness overview
// @Description  30-day averages, active-goal progress, trends over the last two weeks, recommendations, and recent entries.
// @Tags         wellness
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.WellnessSummaryResponse
// @Router       /api/wellness/summary [get]
func (h *WellnessHandler) Summary(c *gin.Context) {
	resp, err := h.svc.Summary(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
