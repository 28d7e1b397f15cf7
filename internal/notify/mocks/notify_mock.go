package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockResetNotifier struct {
	mock.Mock
}

func (m *MockResetNotifier) SendReset(ctx context.Context, email, token string) error {
	args := m.Called(ctx, email, token)
	return args.Error(0)
}
