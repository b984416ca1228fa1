package handler

import (
	"net/http"

	"shifttrack/internal/apierror"
	"shifttrack/internal/dto"
	"shifttrack/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct{ svc service.AdminService }

func NewAdminHandler(svc service.AdminService) *AdminHandler { return &AdminHandler{svc: svc} }

func (h *AdminHandler) ListTables(c *gin.Context) {
	resp, err := h.svc.ListTables(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetTable returns up to 100 rows plus column metadata for one table.
func (h *AdminHandler) GetTable(c *gin.Context) {
	resp, err := h.svc.GetTable(c.Request.Context(), c.Param("tableName"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) UpdateRecord(c *gin.Context) {
	var req dto.UpdateRecordRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.UpdateRecord(c.Request.Context(), c.Param("tableName"), c.Param("id"), req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Record updated"})
}

func (h *AdminHandler) DeleteRecord(c *gin.Context) {
	if err := h.svc.DeleteRecord(c.Request.Context(), c.Param("tableName"), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Record deleted"})
}

// Execute godoc
// @Summary      Run raw SQL
// @Description  Destructive statements (drop table, truncate table, delete from, drop database) require confirmed=true.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ExecuteQueryRequest true "Query"
// @Success      200  {object} dto.ExecuteQueryResponse
// @Failure      400  {object} apierror.APIError
// @Router       /api/admin/execute [post]
func (h *AdminHandler) Execute(c *gin.Context) {
	var req dto.ExecuteQueryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Execute(c.Request.Context(), req)
	if err != nil {
		// SQL errors go back to the admin verbatim; the console is unusable
		// without them. The route sits behind RequireAdmin.
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) Migrate(c *gin.Context) {
	var req dto.MigrateRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Migrate(c.Request.Context(), req.Script); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Migration executed"})
}
