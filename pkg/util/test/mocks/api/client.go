package api

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/datera/ddct/pkg/util/api"
)

var _ api.Client = (*MockClient)(nil)

// MockClient is a testify mock of api.Client.
type MockClient struct {
	mock.Mock
}

// NewMockClient creates a new MockClient.
func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) System(ctx context.Context) (map[string]any, error) {
	args := m.Called(ctx)

	if v := args.Get(0); v != nil {
		return v.(map[string]any), args.Error(1) //nolint:forcetypeassert
	}

	return nil, args.Error(1)
}
