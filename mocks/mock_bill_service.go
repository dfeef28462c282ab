package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/YuxiangJiangCT/billassistant/dto"
)

type MockBillService struct {
	mock.Mock
}

func (m *MockBillService) DecodeUpload(ctx context.Context, filename string, data []byte) (*dto.BillSummary, error) {
	args := m.Called(ctx, filename, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BillSummary), args.Error(1)
}
