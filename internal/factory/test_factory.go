package factory

import (
	"time"

	"github.com/metamatong/comp3981-abalone-sumitoq/internal/dependencies/mocks"
	"github.com/metamatong/comp3981-abalone-sumitoq/internal/services/auth"
	"github.com/metamatong/comp3981-abalone-sumitoq/internal/storage/memory"
	"github.com/metamatong/comp3981-abalone-sumitoq/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, auth.DefaultConfig(), testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
