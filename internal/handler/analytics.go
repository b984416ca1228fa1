package handler

import (
	"net/http"

	"shifttrack/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct{ svc service.AnalyticsService }

func NewAnalyticsHandler(svc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

// Weekly covers the rolling last-7-days window bucketed by weekday.
func (h *AnalyticsHandler) Weekly(c *gin.Context) {
	resp, err := h.svc.Weekly(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Monthly covers the rolling last-30-days window in four week buckets.
func (h *AnalyticsHandler) Monthly(c *gin.Context) {
	resp, err := h.svc.Monthly(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Yearly covers the rolling last-365-days window bucketed by month.
func (h *AnalyticsHandler) Yearly(c *gin.Context) {
	resp, err := h.svc.Yearly(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
