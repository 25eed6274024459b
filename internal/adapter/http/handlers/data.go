package handlers

import (
	"net/http"
	"time"

	"taskdesk/internal/adapter/http/dto"
	"taskdesk/internal/adapter/http/middleware"
	"taskdesk/internal/core/ports"
	"taskdesk/pkg/apierrors"
	"taskdesk/pkg/translator"

	"github.com/gin-gonic/gin"
)

const maxImportSize = 10 << 20

type DataHandler struct {
	dataService ports.DataService
	now         func() time.Time
}

func NewDataHandler(dataService ports.DataService) *DataHandler {
	return &DataHandler{dataService: dataService, now: time.Now}
}

// Export sends the whole persisted state as a downloadable backup file.
func (h *DataHandler) Export(c *gin.Context) {
	document, err := h.dataService.ExportData(c.Request.Context())
	if err != nil {
		respondError(c, err, apierrors.MsgFailExport, "failed to export data")
		return
	}

	filename := "backup-" + h.now().Format("2006-01-02") + ".json"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/json", document)
}

func (h *DataHandler) Import(c *gin.Context) {
	lang := middleware.GetLang(c)

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportSize)
	document, err := c.GetRawData()
	if err != nil || len(document) == 0 {
		badRequest(c, apierrors.MsgInvalidImportPayload)
		return
	}

	if err := h.dataService.ImportData(c.Request.Context(), document); err != nil {
		respondError(c, err, apierrors.MsgFailImport, "failed to import data")
		return
	}

	c.JSON(http.StatusOK, dto.Result{
		Success: true,
		Message: translator.Translate(lang, "importSuccess", nil),
	})
}
