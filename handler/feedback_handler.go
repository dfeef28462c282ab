package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/YuxiangJiangCT/billassistant/dto"
	"github.com/YuxiangJiangCT/billassistant/eventlog"
	"github.com/YuxiangJiangCT/billassistant/metrics"
)

type FeedbackHandler struct {
	recorder eventlog.EventRecorder
	metrics  *metrics.Recorder
	logger   *zap.Logger
}

func NewFeedbackHandler(recorder eventlog.EventRecorder, m *metrics.Recorder, logger *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{recorder: recorder, metrics: m, logger: logger}
}

// PostWTP handles POST /api/wtp
func (h *FeedbackHandler) PostWTP(c *gin.Context) {
	var req dto.WTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid JSON body"})
		return
	}
	if err := h.recorder.RecordWTP(req); err != nil {
		h.logger.Error("failed to record wtp", zap.String("request_id", c.GetString(requestIDKey)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to record response"})
		return
	}
	h.metrics.ObserveEvent("wtp")
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "ok"})
}

// PostSessionEvent handles POST /api/session_event
func (h *FeedbackHandler) PostSessionEvent(c *gin.Context) {
	var req dto.SessionEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid JSON body"})
		return
	}
	if err := h.recorder.RecordSessionEvent(req); err != nil {
		h.logger.Error("failed to record session event", zap.String("request_id", c.GetString(requestIDKey)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to record event"})
		return
	}
	h.metrics.ObserveEvent("session_event")
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "ok"})
}
