package handler

import (
	"net/http"

	"shifttrack/internal/dto"
	"shifttrack/internal/service"

	"github.com/gin-gonic/gin"
)

type KpiHandler struct{ svc service.KpiService }

func NewKpiHandler(svc service.KpiService) *KpiHandler { return &KpiHandler{svc: svc} }

// Create godoc
// @Summary      Record sales KPIs for a shift
// @Description  One KPI record per shift; a second record for the same shift is rejected.
// @Tags         kpi
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateKpiRequest true "Sales counts"
// @Success      201  {object} dto.KpiResponse
// @Failure      400  {object} apierror.APIError
// @Router       /api/kpi [post]
func (h *KpiHandler) Create(c *gin.Context) {
	var req dto.CreateKpiRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *KpiHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *KpiHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetByShift returns a zero-valued record rather than 404 when the shift has
// no KPI record yet.
func (h *KpiHandler) GetByShift(c *gin.Context) {
	shiftID, ok := pathUUID(c, "shiftId")
	if !ok {
		return
	}
	resp, err := h.svc.GetByShift(c.Request.Context(), currentUserID(c), shiftID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *KpiHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateKpiRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), currentUserID(c), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *KpiHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), currentUserID(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *KpiHandler) Summary(c *gin.Context) {
	resp, err := h.svc.Summary(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
