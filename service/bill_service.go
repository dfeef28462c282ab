package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/YuxiangJiangCT/billassistant/dto"
	"github.com/YuxiangJiangCT/billassistant/metrics"
	"github.com/YuxiangJiangCT/billassistant/utils/billparser"
)

// TextProducer turns an uploaded document into raw text.
type TextProducer interface {
	ExtractText(ctx context.Context, filename string, data []byte) (string, dto.TextSource, error)
}

// BillService decodes uploaded bills into summaries.
type BillService interface {
	DecodeUpload(ctx context.Context, filename string, data []byte) (*dto.BillSummary, error)
}

type billService struct {
	extractor   TextProducer
	uploadDir   string
	maxFileSize int64
	metrics     *metrics.Recorder
	logger      *zap.Logger
}

// NewBillService wires the decoding pipeline. An empty uploadDir disables
// persisting uploads; a maxFileSize of zero disables the size check.
func NewBillService(
	extractor TextProducer,
	uploadDir string,
	maxFileSize int64,
	recorder *metrics.Recorder,
	logger *zap.Logger,
) BillService {
	return &billService{
		extractor:   extractor,
		uploadDir:   uploadDir,
		maxFileSize: maxFileSize,
		metrics:     recorder,
		logger:      logger,
	}
}

func (s *billService) DecodeUpload(ctx context.Context, filename string, data []byte) (*dto.BillSummary, error) {
	start := time.Now()

	if strings.TrimSpace(filename) == "" {
		return nil, dto.ErrEmptyFilename
	}
	if s.maxFileSize > 0 && int64(len(data)) > s.maxFileSize {
		s.observe("too_large", start)
		return nil, dto.ErrFileTooLarge
	}

	if s.uploadDir != "" {
		path, err := s.saveUpload(filename, data)
		if err != nil {
			s.observe("error", start)
			return nil, err
		}
		s.logger.Debug("upload saved", zap.String("path", path))
	}

	text, source, err := s.extractor.ExtractText(ctx, filename, data)
	if err != nil {
		s.observe("error", start)
		return nil, fmt.Errorf("extracting text from %s: %w", filename, err)
	}
	s.metrics.ObserveTextSource(string(source))

	summary, err := billparser.Parse(text)
	if errors.Is(err, dto.ErrNoTextExtracted) {
		s.observe("no_text", start)
		s.logger.Info("no text extracted",
			zap.String("filename", filename),
			zap.String("source", string(source)),
		)
		return nil, err
	}
	if err != nil {
		s.observe("error", start)
		return nil, fmt.Errorf("parsing bill text: %w", err)
	}

	s.metrics.ObserveIssues(summary.Issues)
	s.observe("ok", start)
	s.logger.Info("bill decoded",
		zap.String("filename", filename),
		zap.String("source", string(source)),
		zap.String("provider", summary.Provider),
		zap.Float64("printed_owe", summary.PrintedOwe),
		zap.Float64("should_owe", summary.ShouldOwe),
		zap.Float64("estimated_overcharge", summary.EstimatedOvercharge),
		zap.Int("issues", len(summary.Issues)),
	)
	return &summary, nil
}

func (s *billService) saveUpload(filename string, data []byte) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("creating upload dir: %w", err)
	}
	base := filepath.Base(filepath.Clean("/" + filename))
	path := filepath.Join(s.uploadDir, uuid.New().String()+"_"+base)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("saving upload: %w", err)
	}
	return path, nil
}

func (s *billService) observe(outcome string, start time.Time) {
	s.metrics.ObserveUpload(outcome, time.Since(start).Seconds())
}
