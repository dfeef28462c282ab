package mocks

import (
	"github.com/stretchr/testify/mock"
)

type MockOCRClient struct {
	mock.Mock
}

func (m *MockOCRClient) ExtractTextAndQuality(data []byte) (string, float64, error) {
	args := m.Called(data)
	return args.String(0), args.Get(1).(float64), args.Error(2)
}

type MockPDFProcessor struct {
	mock.Mock
}

func (m *MockPDFProcessor) ExtractText(pdfData []byte) (string, error) {
	args := m.Called(pdfData)
	return args.String(0), args.Error(1)
}

func (m *MockPDFProcessor) ExtractImages(pdfData []byte) ([][]byte, error) {
	args := m.Called(pdfData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]byte), args.Error(1)
}
