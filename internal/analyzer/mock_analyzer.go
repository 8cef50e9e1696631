package analyzer

import (
	"context"

	"github.com/stretchr/testify/mock"

	"quotecheck/internal/schema"
)

// MockAnalyzer is a mock implementation of Analyzer using testify/mock.
type MockAnalyzer struct {
	mock.Mock
}

func (m *MockAnalyzer) Analyze(ctx context.Context, quoteText, requestID string) (*schema.QuoteCheckResult, error) {
	args := m.Called(ctx, quoteText, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schema.QuoteCheckResult), args.Error(1)
}
