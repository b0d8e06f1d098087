package gemini

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiterHonoursCancelWhileWaitingForSlot(t *testing.T) {
	l := newLimiter(1, time.Millisecond)

	release, err := l.acquire(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	start := time.Now()
	_, err = l.acquire(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)

	release()
	release, err = l.acquire(context.Background())
	require.NoError(t, err)
	release()
}

func TestLimiterHonoursCancelWhilePacing(t *testing.T) {
	l := newLimiter(2, time.Hour)

	release, err := l.acquire(context.Background())
	require.NoError(t, err)
	release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = l.acquire(ctx)
	assert.Error(t, err)

	// the slot taken before pacing failed is given back
	assert.Len(t, l.sem, 0)
}
