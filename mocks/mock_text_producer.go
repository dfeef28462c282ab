package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/YuxiangJiangCT/billassistant/dto"
)

type MockTextProducer struct {
	mock.Mock
}

func (m *MockTextProducer) ExtractText(ctx context.Context, filename string, data []byte) (string, dto.TextSource, error) {
	args := m.Called(ctx, filename, data)
	return args.String(0), args.Get(1).(dto.TextSource), args.Error(2)
}
