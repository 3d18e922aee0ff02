package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	*BaseHandler
}

func NewExportHandler(base *BaseHandler) *ExportHandler {
	return &ExportHandler{BaseHandler: base}
}

// TeacherRoster handles GET /teacher/export/roster/ and streams the roster
// workbook as a download.
func (h *ExportHandler) TeacherRoster(c *gin.Context) {
	accountID, _ := accountIDFrom(c)

	data, filename, err := h.services.Export.TeacherRoster(c.Request.Context(), accountID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
