package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo_SucceedsFirstTry(t *testing.T) {
	calls := 0
	tries, err := Do(context.Background(), 3, 0, func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, tries)
	assert.Equal(t, 1, calls)
}

func TestDo_SucceedsAfterFailures(t *testing.T) {
	calls := 0
	tries, err := Do(context.Background(), 3, time.Millisecond, func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, tries)
	assert.Equal(t, 3, calls)
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	sentinel := errors.New("still down")
	calls := 0
	tries, err := Do(context.Background(), 3, time.Millisecond, func(ctx context.Context) error {
		calls++
		return sentinel
	})

	require.Error(t, err)
	assert.Equal(t, 3, tries)
	assert.Equal(t, 3, calls)
	assert.ErrorIs(t, err, sentinel)
}

func TestDo_NoSleepAfterLastAttempt(t *testing.T) {
	start := time.Now()
	_, err := Do(context.Background(), 2, 50*time.Millisecond, func(ctx context.Context) error {
		return errors.New("always")
	})

	require.Error(t, err)
	// One inter-attempt delay, not two.
	assert.Less(t, time.Since(start), 150*time.Millisecond)
}

func TestDo_ContextCanceledDuringDelay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	tries, err := Do(ctx, 5, time.Second, func(ctx context.Context) error {
		calls++
		return errors.New("transient")
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, tries)
	assert.Equal(t, 1, calls)
}

func TestDo_ZeroAttemptsTreatedAsOne(t *testing.T) {
	calls := 0
	tries, err := Do(context.Background(), 0, 0, func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, tries)
	assert.Equal(t, 1, calls)
}
