package handlers

import (
	"fmt"
	"io"
	"net/http"

	"creditnext/internal/dto"
	"creditnext/internal/errors"
	"creditnext/internal/ocr"
	"creditnext/internal/services"

	"github.com/labstack/echo/v4"
)

// OCRHandler turns uploaded statements into ledgers
type OCRHandler struct {
	ocr      services.OCRServiceInterface
	maxBytes int64
}

func NewOCRHandler(ocrService services.OCRServiceInterface, maxBytes int64) *OCRHandler {
	return &OCRHandler{ocr: ocrService, maxBytes: maxBytes}
}

// Extract handles POST /api/v1/ocr (multipart: file, optional password and bank)
func (h *OCRHandler) Extract(c echo.Context) error {
	header, err := c.FormFile("file")
	if err != nil {
		return SendError(c, errors.OCRMissingFile)
	}
	if h.maxBytes > 0 && header.Size > h.maxBytes {
		return SendError(c, errors.OCRFileTooLarge, errors.WithDetails(fmt.Sprintf("Limit is %d bytes", h.maxBytes)))
	}

	file, err := header.Open()
	if err != nil {
		return SendSystemError(c, fmt.Errorf("failed to open upload: %w", err))
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return SendSystemError(c, fmt.Errorf("failed to read upload: %w", err))
	}

	doc := ocr.Document{
		Filename: header.Filename,
		Content:  content,
		Password: c.FormValue("password"),
	}

	extraction, err := h.ocr.Extract(c.Request().Context(), doc, c.FormValue("bank"))
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.OCRResponse{
		Transactions: extraction.Transactions,
		Source:       string(extraction.Source),
		Count:        len(extraction.Transactions),
	})
}
