package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockDefinitionCache struct {
	mock.Mock
}

func (m *MockDefinitionCache) GetDefinition(ctx context.Context, word string) ([]byte, bool, error) {
	args := m.Called(ctx, word)
	var data []byte
	if v := args.Get(0); v != nil {
		data = v.([]byte)
	}
	return data, args.Bool(1), args.Error(2)
}

func (m *MockDefinitionCache) SetDefinition(ctx context.Context, word string, data []byte, ttl time.Duration) error {
	args := m.Called(ctx, word, data, ttl)
	return args.Error(0)
}
