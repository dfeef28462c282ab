package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/YuxiangJiangCT/billassistant/dto"
	"github.com/YuxiangJiangCT/billassistant/service"
)

type BillHandler struct {
	billService service.BillService
	maxFileSize int64
	logger      *zap.Logger
}

func NewBillHandler(billService service.BillService, maxFileSize int64, logger *zap.Logger) *BillHandler {
	return &BillHandler{
		billService: billService,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// UploadBill handles POST /api/upload_bill
func (h *BillHandler) UploadBill(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "no file field", err)
		return
	}
	if strings.TrimSpace(header.Filename) == "" {
		h.sendError(c, http.StatusBadRequest, "empty filename", nil)
		return
	}
	if h.maxFileSize > 0 && header.Size > h.maxFileSize {
		h.sendError(c, http.StatusRequestEntityTooLarge, dto.ErrFileTooLarge.Error(), nil)
		return
	}

	file, err := header.Open()
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "failed to read upload", err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "failed to read upload", err)
		return
	}

	summary, err := h.billService.DecodeUpload(c.Request.Context(), header.Filename, data)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, summary)
	case errors.Is(err, dto.ErrNoTextExtracted):
		h.sendError(c, http.StatusBadRequest, dto.ErrNoTextExtracted.Error(), nil)
	case errors.Is(err, dto.ErrEmptyFilename):
		h.sendError(c, http.StatusBadRequest, "empty filename", nil)
	case errors.Is(err, dto.ErrFileTooLarge):
		h.sendError(c, http.StatusRequestEntityTooLarge, dto.ErrFileTooLarge.Error(), nil)
	default:
		h.sendError(c, http.StatusInternalServerError, "failed to decode bill", err)
	}
}

func (h *BillHandler) sendError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		h.logger.Warn(message,
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.Int("status", status),
			zap.Error(err),
		)
	}
	c.JSON(status, dto.ErrorResponse{Error: message})
}
