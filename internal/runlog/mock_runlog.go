package runlog

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockLogger is a mock implementation of Logger using testify/mock.
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Log(ctx context.Context, rec Record) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockLogger) Close() error {
	args := m.Called()
	return args.Error(0)
}
