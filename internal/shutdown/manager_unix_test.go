//go:build unix

package shutdown

import (
	"syscall"
	"testing"
	"time"

	"futurebuddy-desktop/internal/logger"

	"github.com/stretchr/testify/require"
)

func TestListenShutsDownOnSignal(t *testing.T) {
	m := NewManager(logger.Nop())
	stop := m.Listen()
	defer stop()

	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

	select {
	case <-m.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown not triggered by SIGTERM")
	}
}
