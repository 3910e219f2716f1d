package shell

import (
	"context"
	"errors"

	"github.com/stretchr/testify/mock"

	"github.com/datera/ddct/pkg/util/shell"
)

var _ shell.Runner = (*MockRunner)(nil)

var errExit = errors.New("exit status 1")

// MockRunner is a testify mock of shell.Runner.
type MockRunner struct {
	mock.Mock
}

// NewMockRunner creates a new MockRunner.
func NewMockRunner() *MockRunner {
	return &MockRunner{}
}

// Run records the call and returns the configured output and error.
func (m *MockRunner) Run(ctx context.Context, command string) (string, error) {
	args := m.Called(ctx, command)

	return args.String(0), args.Error(1)
}

// Succeed configures command to exit with status zero and print out.
func (m *MockRunner) Succeed(command string, out string) *mock.Call {
	return m.On("Run", mock.Anything, command).Return(out, nil)
}

// Fail configures command to exit with a non-zero status.
func (m *MockRunner) Fail(command string) *mock.Call {
	return m.On("Run", mock.Anything, command).Return("", errExit)
}
