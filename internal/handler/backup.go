package handler

import (
	"errors"
	"net/http"

	"shifttrack/internal/apierror"
	"shifttrack/internal/service"

	"github.com/gin-gonic/gin"
)

const maxImportSize = 5 << 20 // 5MB

type BackupHandler struct{ svc service.BackupService }

func NewBackupHandler(svc service.BackupService) *BackupHandler { return &BackupHandler{svc: svc} }

// Export godoc
// @Summary      Export shifts as CSV
// @Tags         backup
// @Produce      text/csv
// @Security     BearerAuth
// @Success      200 {file} binary
// @Router       /api/backup/export [get]
func (h *BackupHandler) Export(c *gin.Context) {
	data, err := h.svc.ExportCSV(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="shifts-backup.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// Import godoc
// @Summary      Import shifts from CSV
// @Description  Multipart upload, max 5MB. Rows are validated individually; errors are row-numbered. Total pay is recomputed.
// @Tags         backup
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "CSV file"
// @Success      200  {object} dto.ImportResult
// @Failure      400  {object} apierror.APIError
// @Router       /api/backup/import [post]
func (h *BackupHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("CSV file is required"))
		return
	}
	if fileHeader.Size > maxImportSize {
		c.JSON(http.StatusBadRequest, apierror.New("File exceeds the 5MB limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Could not read uploaded file"))
		return
	}
	defer file.Close()

	result, err := h.svc.ImportCSV(c.Request.Context(), currentUserID(c), file)
	if err != nil {
		var ve *service.ValidationError
		if !errors.As(err, &ve) {
			respondServiceError(c, err)
			return
		}
		// Partial results (row errors) still accompany the failure message.
		if result != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": ve.Error(), "errors": result.Errors})
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(ve.Error()))
		return
	}
	c.JSON(http.StatusOK, result)
}
