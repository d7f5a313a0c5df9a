package ats

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/rgehrsitz/ctcgo/internal/store"
)

// ErrUsageLimit is returned when a user has no checks left in the window.
var ErrUsageLimit = errors.New("ats usage limit reached")

// UsageLimiter allows MaxTries checks per user in a rolling Window.
type UsageLimiter struct {
	Repo     store.AtsRepository
	MaxTries int
	Window   time.Duration
	Now      func() time.Time

	mu    sync.Mutex
	holds map[string]*userHold
}

type userHold struct {
	sem  *semaphore.Weighted
	refs int
}

// NewUsageLimiter returns a limiter over repo. Non-positive values select
// 3 tries per 12 hours.
func NewUsageLimiter(repo store.AtsRepository, maxTries int, window time.Duration) *UsageLimiter {
	if maxTries <= 0 {
		maxTries = 3
	}
	if window <= 0 {
		window = 12 * time.Hour
	}
	return &UsageLimiter{Repo: repo, MaxTries: maxTries, Window: window, Now: time.Now}
}

// Status reports the user's remaining checks. ResetAt is when the oldest
// check in the window expires, or now when the window is empty.
func (l *UsageLimiter) Status(ctx context.Context, userID string) (domain.UsageStatus, error) {
	now := l.Now()
	used, err := l.Repo.UsageSince(ctx, userID, now.Add(-l.Window))
	if err != nil {
		return domain.UsageStatus{}, err
	}
	remaining := max(l.MaxTries-len(used), 0)
	resetAt := now
	if len(used) > 0 {
		resetAt = used[0].Add(l.Window)
	}
	return domain.UsageStatus{Allowed: remaining > 0, Remaining: remaining, ResetAt: resetAt}, nil
}

// Record logs one check for userID at the current time.
func (l *UsageLimiter) Record(ctx context.Context, userID string) error {
	return l.Repo.RecordUsage(ctx, userID, l.Now())
}

// Hold serializes check-then-record for one user within this process, so
// concurrent checks cannot overrun MaxTries. Call release when done.
func (l *UsageLimiter) Hold(ctx context.Context, userID string) (release func(), err error) {
	l.mu.Lock()
	if l.holds == nil {
		l.holds = make(map[string]*userHold)
	}
	h := l.holds[userID]
	if h == nil {
		h = &userHold{sem: semaphore.NewWeighted(1)}
		l.holds[userID] = h
	}
	h.refs++
	l.mu.Unlock()

	drop := func() {
		l.mu.Lock()
		h.refs--
		if h.refs == 0 {
			delete(l.holds, userID)
		}
		l.mu.Unlock()
	}
	if err := h.sem.Acquire(ctx, 1); err != nil {
		drop()
		return nil, err
	}
	return func() {
		h.sem.Release(1)
		drop()
	}, nil
}
