package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockGenerator is a mock implementation of greeting.Generator
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, directorName, playTitle string) (string, error) {
	args := m.Called(ctx, directorName, playTitle)
	return args.String(0), args.Error(1)
}
