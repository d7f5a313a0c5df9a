package ats

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rgehrsitz/ctcgo/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func newTestService(t *testing.T) (*Service, *clock) {
	t.Helper()
	c := &clock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	mem := store.NewMemoryStore()
	mem.Now = c.Now
	lim := NewUsageLimiter(mem, 3, 12*time.Hour)
	lim.Now = c.Now
	return NewService(mem, lim, 0, zap.NewNop()), c
}

func TestUsageLimiter(t *testing.T) {
	svc, c := newTestService(t)
	ctx := context.Background()
	first := c.now

	status, err := svc.Usage(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, status.Allowed)
	assert.Equal(t, 3, status.Remaining)
	assert.Equal(t, c.now, status.ResetAt)

	for i := 0; i < 3; i++ {
		out, err := svc.CheckText(ctx, "alice", sampleResume)
		require.NoError(t, err)
		assert.Equal(t, 2-i, out.Remaining)
		assert.Equal(t, first.Add(12*time.Hour), out.ResetAt)
		c.now = c.now.Add(time.Hour)
	}

	_, err = svc.CheckText(ctx, "alice", sampleResume)
	assert.True(t, errors.Is(err, ErrUsageLimit))

	other, err := svc.CheckText(ctx, "bob", sampleResume)
	require.NoError(t, err)
	assert.Equal(t, 2, other.Remaining)

	c.now = first.Add(12*time.Hour + time.Second)
	status, err = svc.Usage(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, status.Allowed)
	assert.Equal(t, 1, status.Remaining)
	assert.Equal(t, first.Add(13*time.Hour), status.ResetAt)
}

func TestService_CheckFile(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	out, err := svc.CheckFile(ctx, "alice", []byte(sampleResume))
	require.NoError(t, err)
	assert.Equal(t, int64(len(sampleResume)), out.FileSize)
	assert.NotEmpty(t, out.ID)

	_, err = svc.CheckFile(ctx, "alice", []byte("%PDF-1.7\n%binary"))
	assert.True(t, errors.Is(err, ErrUnsupportedFile))

	status, _ := svc.Usage(ctx, "alice")
	assert.Equal(t, 2, status.Remaining, "rejected uploads are not counted")
}

func TestService_HistoryAndEnhance(t *testing.T) {
	svc, c := newTestService(t)
	ctx := context.Background()

	first, err := svc.CheckText(ctx, "alice", "hello world")
	require.NoError(t, err)
	c.now = c.now.Add(time.Minute)
	second, err := svc.CheckText(ctx, "alice", sampleResume)
	require.NoError(t, err)

	history, err := svc.History(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, first.ID, history[1].ID)

	_, err = svc.GetCheck(ctx, "bob", first.ID)
	assert.True(t, errors.Is(err, store.ErrNotFound))

	enhanced, err := svc.Enhance(ctx, "alice", second.ID, "")
	require.NoError(t, err)
	assert.Equal(t, second.Score, enhanced.Score)
	assert.Len(t, enhanced.PremiumFeatures.BulletRewrites, 2)

	_, err = svc.Enhance(ctx, "bob", second.ID, "")
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestService_EmptyText(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.CheckText(context.Background(), "alice", " \n ")
	assert.True(t, errors.Is(err, ErrEmptyResume))
}

func TestService_ConcurrentChecksRespectLimit(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		ok      int
		limited int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CheckText(ctx, "alice", "Go developer with SQL and Docker experience")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, ErrUsageLimit):
				limited++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, ok)
	assert.Equal(t, 7, limited)
	assert.Empty(t, svc.Limiter.holds, "holds are dropped once released")

	status, err := svc.Usage(ctx, "alice")
	require.NoError(t, err)
	assert.Zero(t, status.Remaining)
}

func TestUsageLimiter_HoldCancelled(t *testing.T) {
	svc, _ := newTestService(t)
	release, err := svc.Limiter.Hold(context.Background(), "alice")
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = svc.Limiter.Hold(ctx, "alice")
	assert.ErrorIs(t, err, context.Canceled)
}
