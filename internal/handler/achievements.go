package handler

import (
	"net/http"

	"shifttrack/internal/service"

	"github.com/gin-gonic/gin"
)

type AchievementsHandler struct{ svc service.AchievementService }

func NewAchievementsHandler(svc service.AchievementService) *AchievementsHandler {
	return &AchievementsHandler{svc: svc}
}

func (h *AchievementsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Check evaluates all milestones synchronously and returns the newly
// unlocked achievements. The same evaluation runs async after shift writes.
func (h *AchievementsHandler) Check(c *gin.Context) {
	resp, err := h.svc.Check(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
