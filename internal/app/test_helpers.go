package app

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/vk/mendgrid/internal/config"
	"github.com/vk/mendgrid/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates a new app instance for system testing. It returns the
// app together with the buffers receiving its completion output and its logs.
func SetupAppTest(t *testing.T, appConfig *Config, loader config.Loader, modules ...registry.Module) (*App, *SafeBuffer, *SafeBuffer) {
	t.Helper()

	outBuffer := &SafeBuffer{}
	logBuffer := &SafeBuffer{}
	appConfig.LogLevel = "debug"
	testApp := NewApp(outBuffer, logBuffer, appConfig, loader, modules...)

	t.Cleanup(func() {
		if os.Getenv("MENDGRID_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, outBuffer, logBuffer
}
