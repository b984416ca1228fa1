package handler

import (
	"net/http"

	"shifttrack/internal/dto"
	"shifttrack/internal/service"

	"github.com/gin-gonic/gin"
)

type PayHandler struct{ svc service.PayService }

func NewPayHandler(svc service.PayService) *PayHandler { return &PayHandler{svc: svc} }

// Daily godoc
// @Summary      Daily pay total
// @Tags         pay
// @Produce      json
// @Security     BearerAuth
// @Param        date query string true "Date YYYY-MM-DD"
// @Success      200  {object} dto.DailyPayResponse
// @Router       /api/pay/daily [get]
func (h *PayHandler) Daily(c *gin.Context) {
	var filter dto.DailyPayFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.Daily(c.Request.Context(), currentUserID(c), filter.Date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Weekly returns the Sunday-start calendar week beginning at week_start.
func (h *PayHandler) Weekly(c *gin.Context) {
	var filter dto.WeeklyPayFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.Weekly(c.Request.Context(), currentUserID(c), filter.WeekStart)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PayHandler) Monthly(c *gin.Context) {
	var filter dto.MonthlyPayFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.Monthly(c.Request.Context(), currentUserID(c), filter.Month, filter.Year)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PayHandler) Yearly(c *gin.Context) {
	var filter dto.YearlyPayFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.Yearly(c.Request.Context(), currentUserID(c), filter.Year)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Report godoc
// @Summary      Monthly pay statement PDF
// @Tags         pay
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        month query int true "Month 1-12"
// @Param        year  query int true "Year"
// @Success      200 {file} binary
// @Router       /api/pay/report [get]
func (h *PayHandler) Report(c *gin.Context) {
	var filter dto.MonthlyPayFilter
	if !bindQuery(c, &filter) {
		return
	}
	pdf, fileName, err := h.svc.MonthlyReportPDF(c.Request.Context(), currentUserID(c), filter.Month, filter.Year)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
