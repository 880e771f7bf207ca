package shutdown

import (
	"sync"
	"testing"
	"time"

	"futurebuddy-desktop/internal/logger"

	"github.com/stretchr/testify/assert"
)

func TestShutdownRunsComponentsInReverseOrder(t *testing.T) {
	m := NewManager(logger.Nop())

	var mu sync.Mutex
	var order []int
	for i := 0; i < 3; i++ {
		i := i
		m.Register(Func(func() {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, i)
		}))
	}

	m.Shutdown()

	assert.Equal(t, []int{2, 1, 0}, order)
	assert.Error(t, m.Context().Err())
}

func TestShutdownIsIdempotent(t *testing.T) {
	m := NewManager(logger.Nop())

	calls := 0
	m.Register(Func(func() { calls++ }))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, 1, calls)
	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestShutdownSkipsStuckComponent(t *testing.T) {
	m := NewManager(logger.Nop())
	m.SetComponentTimeout(10 * time.Millisecond)

	release := make(chan struct{})
	defer close(release)

	ran := false
	m.Register(Func(func() { ran = true }))
	m.Register(Func(func() { <-release }))

	m.Shutdown()

	assert.True(t, ran)
}

func TestListenStopDoesNotShutDown(t *testing.T) {
	m := NewManager(logger.Nop())
	stop := m.Listen()
	stop()

	select {
	case <-m.Done():
		t.Fatal("stop must not run the shutdown sequence")
	default:
	}
	assert.NoError(t, m.Context().Err())
}
