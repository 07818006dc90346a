package orderlock_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/orderlock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_SerializesSameOrder(t *testing.T) {
	registry := orderlock.NewRegistry()
	orderID := kernel.NewUUID()

	var mu sync.Mutex
	var events []int
	var wg sync.WaitGroup

	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			release, err := registry.Acquire(context.Background(), orderID)
			require.NoError(t, err)
			defer release()

			mu.Lock()
			events = append(events, i)
			mu.Unlock()
		}()
	}

	wg.Wait()
	assert.Len(t, events, 10)
}

func TestRegistry_DifferentOrdersDoNotBlock(t *testing.T) {
	registry := orderlock.NewRegistry()
	first := kernel.NewUUID()
	second := kernel.NewUUID()

	releaseFirst, err := registry.Acquire(context.Background(), first)
	require.NoError(t, err)
	defer releaseFirst()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	releaseSecond, err := registry.Acquire(ctx, second)
	require.NoError(t, err)
	releaseSecond()
}

func TestRegistry_AcquireRespectsContextCancellation(t *testing.T) {
	registry := orderlock.NewRegistry()
	orderID := kernel.NewUUID()

	release, err := registry.Acquire(context.Background(), orderID)
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = registry.Acquire(ctx, orderID)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRegistry_ReleaseAllowsNextAcquire(t *testing.T) {
	registry := orderlock.NewRegistry()
	orderID := kernel.NewUUID()

	release, err := registry.Acquire(context.Background(), orderID)
	require.NoError(t, err)
	release()

	release, err = registry.Acquire(context.Background(), orderID)
	require.NoError(t, err)
	release()
}
