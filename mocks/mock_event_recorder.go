package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/YuxiangJiangCT/billassistant/dto"
)

type MockEventRecorder struct {
	mock.Mock
}

func (m *MockEventRecorder) RecordWTP(req dto.WTPRequest) error {
	args := m.Called(req)
	return args.Error(0)
}

func (m *MockEventRecorder) RecordSessionEvent(req dto.SessionEventRequest) error {
	args := m.Called(req)
	return args.Error(0)
}
