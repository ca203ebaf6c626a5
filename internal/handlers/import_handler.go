package handlers

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"eventhub/internal/errors"
	"eventhub/internal/services"
	"eventhub/internal/sheets"

	"github.com/labstack/echo/v4"
)

// ImportHandler accepts a spreadsheet export and loads it into the hub
type ImportHandler struct {
	importService  services.ImportServiceInterface
	maxUploadBytes int64
	maxRows        int
}

// NewImportHandler creates a new import handler
func NewImportHandler(importService services.ImportServiceInterface, maxUploadBytes int64, maxRows int) *ImportHandler {
	return &ImportHandler{
		importService:  importService,
		maxUploadBytes: maxUploadBytes,
		maxRows:        maxRows,
	}
}

// ImportWorkbook reads the uploaded .xlsx or .xls file and upserts every recognised sheet
// @Summary Import spreadsheet (admin)
// @Tags Admin
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Workbook (.xlsx or single-sheet .xls)"
// @Param sheet formData string false "Sheet name for a .xls file, e.g. Events"
// @Success 200 {object} SuccessResponse{data=dto.ImportSummary} "Per-sheet counts"
// @Failure 400 {object} errors.ErrorResponse "IMPORT_001 - Unsupported format"
// @Failure 413 {object} errors.ErrorResponse "IMPORT_003 - File too large"
// @Failure 422 {object} errors.ErrorResponse "IMPORT_002 - Spreadsheet could not be read"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Store kept failing, import stopped"
// @Router /admin/import [post]
func (h *ImportHandler) ImportWorkbook(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("file: is required"))
	}

	if fileHeader.Size > h.maxUploadBytes {
		return SendError(c, errors.ImportFileTooLarge)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return SendSystemError(c, err)
	}
	defer file.Close()

	book, err := sheets.Read(file, fileHeader.Filename, c.FormValue("sheet"), h.maxRows)
	if err != nil {
		if isAny(err, sheets.ErrUnsupportedFormat, sheets.ErrNoWorksheet, sheets.ErrMultipleSheets) {
			return SendServiceError(c, err)
		}
		return SendError(c, errors.ImportUnreadableFile, errors.WithDetails(err.Error()))
	}

	summary, err := h.importService.Import(c.Request().Context(), book, actor)
	if err != nil {
		if summary != nil && stderrors.Is(err, services.ErrCircuitBreakerOpen) {
			imported, _ := summary.Total()
			return SendError(c, errors.SystemServiceUnavailable,
				errors.WithDetails(err.Error(), fmt.Sprintf("%d rows were imported before stopping", imported)))
		}
		return SendServiceError(c, err)
	}

	imported, skipped := summary.Total()
	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    summary,
		Message: "Import finished",
		Meta: map[string]interface{}{
			"imported": imported,
			"skipped":  skipped,
		},
	})
}
