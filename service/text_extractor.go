package service

import (
	"context"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/YuxiangJiangCT/billassistant/dto"
)

// OCRClient recognizes text in an encoded image.
type OCRClient interface {
	ExtractTextAndQuality(data []byte) (string, float64, error)
}

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".tiff": true,
	".tif":  true,
	".bmp":  true,
}

type TextExtractor struct {
	ocr    OCRClient
	pdf    PDFProcessor
	logger *zap.Logger
}

func NewTextExtractor(ocr OCRClient, pdf PDFProcessor, logger *zap.Logger) *TextExtractor {
	return &TextExtractor{ocr: ocr, pdf: pdf, logger: logger}
}

// ExtractText produces the raw text of an uploaded document, choosing the
// path by file extension. Unsupported types yield empty text and TextSourceNone.
func (e *TextExtractor) ExtractText(ctx context.Context, filename string, data []byte) (string, dto.TextSource, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch {
	case ext == ".pdf":
		return e.extractPDF(ctx, filename, data)
	case imageExtensions[ext]:
		text, conf, err := e.ocr.ExtractTextAndQuality(data)
		if err != nil {
			return "", dto.TextSourceImageOCR, err
		}
		e.logger.Debug("image ocr complete",
			zap.String("filename", filename),
			zap.Float64("confidence", conf),
		)
		return text, dto.TextSourceImageOCR, nil
	case ext == ".txt":
		return string(data), dto.TextSourcePlainText, nil
	default:
		e.logger.Info("unsupported file type", zap.String("filename", filename))
		return "", dto.TextSourceNone, nil
	}
}

func (e *TextExtractor) extractPDF(ctx context.Context, filename string, data []byte) (string, dto.TextSource, error) {
	text, err := e.pdf.ExtractText(data)
	if err != nil {
		e.logger.Warn("pdf text extraction failed", zap.String("filename", filename), zap.Error(err))
	}
	text = strings.TrimSpace(text)
	if text != "" {
		return text, dto.TextSourcePDFText, nil
	}

	// Scanned PDF: OCR the embedded page images.
	images, err := e.pdf.ExtractImages(data)
	if err != nil {
		e.logger.Warn("ocr fallback failed", zap.String("filename", filename), zap.Error(err))
		return "", dto.TextSourcePDFOCR, nil
	}

	parts := make([]string, 0, len(images))
	for i, img := range images {
		if err := ctx.Err(); err != nil {
			return "", dto.TextSourcePDFOCR, err
		}
		pageText, conf, err := e.ocr.ExtractTextAndQuality(img)
		if err != nil {
			e.logger.Warn("ocr fallback failed",
				zap.String("filename", filename),
				zap.Int("image", i),
				zap.Error(err),
			)
			continue
		}
		e.logger.Debug("pdf page ocr complete",
			zap.String("filename", filename),
			zap.Int("image", i),
			zap.Float64("confidence", conf),
		)
		parts = append(parts, pageText)
	}
	return strings.Join(parts, "\n"), dto.TextSourcePDFOCR, nil
}
