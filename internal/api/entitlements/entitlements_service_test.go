package entitlements

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/tailcircle-api/config"
	"github.com/FACorreiaa/tailcircle-api/internal/types"
)

func newTestService(limit int, now time.Time) (*ServiceImpl, *time.Time) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := NewServiceImpl(config.EntitlementsConfig{FreeDailySwipes: limit}, logger)
	clock := now
	s.now = func() time.Time { return clock }
	return s, &clock
}

func TestIsPremium(t *testing.T) {
	assert.True(t, IsPremium(types.PlanPremiumMonthly))
	assert.True(t, IsPremium(types.PlanPremiumYearly))
	assert.True(t, IsPremium("premium"))
	assert.False(t, IsPremium(types.PlanFree))
	assert.False(t, IsPremium(""))
}

func TestServiceImpl_Get(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)
	s, _ := newTestService(25, now)
	ctx := context.Background()

	t.Run("free plan", func(t *testing.T) {
		e := s.Get(ctx, "user-1", types.PlanFree)
		assert.Equal(t, types.PlanFree, e.Plan)
		assert.False(t, e.IsPremium)
		assert.Equal(t, 25, e.DailySwipeLimit)
		assert.Equal(t, 0, e.SwipesUsed)
		assert.Equal(t, 25, e.SwipesRemaining)
		assert.False(t, e.CanSeeWhoLikedYou)
		assert.False(t, e.CanUseSuperLike)
		assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), e.ResetsAt)
	})

	t.Run("missing plan is free", func(t *testing.T) {
		e := s.Get(ctx, "user-1", "")
		assert.Equal(t, types.PlanFree, e.Plan)
		assert.False(t, e.IsPremium)
	})

	t.Run("premium plan", func(t *testing.T) {
		e := s.Get(ctx, "user-2", types.PlanPremiumYearly)
		assert.True(t, e.IsPremium)
		assert.Equal(t, types.Unlimited, e.DailySwipeLimit)
		assert.Equal(t, types.Unlimited, e.SwipesRemaining)
		assert.True(t, e.CanSeeWhoLikedYou)
		assert.True(t, e.CanUseSuperLike)
	})
}

func TestNewServiceImpl_DefaultLimit(t *testing.T) {
	s, _ := newTestService(0, time.Now())
	assert.Equal(t, defaultFreeDailySwipes, s.freeDailySwipes)
}

func TestServiceImpl_RecordSwipe_FreeLimit(t *testing.T) {
	now := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)
	s, clock := newTestService(3, now)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		e, err := s.RecordSwipe(ctx, "user-1", types.PlanFree, types.SwipeLike)
		require.NoError(t, err)
		assert.Equal(t, i, e.SwipesUsed)
		assert.Equal(t, 3-i, e.SwipesRemaining)
	}

	e, err := s.RecordSwipe(ctx, "user-1", types.PlanFree, types.SwipePass)
	require.ErrorIs(t, err, ErrDailyLimitReached)
	assert.Equal(t, 3, e.SwipesUsed)
	assert.Equal(t, 0, e.SwipesRemaining)

	// other users keep their own counter
	_, err = s.RecordSwipe(ctx, "user-2", types.PlanFree, types.SwipeLike)
	require.NoError(t, err)

	// a new UTC day resets the counter
	*clock = now.Add(2 * time.Minute)
	e, err = s.RecordSwipe(ctx, "user-1", types.PlanFree, types.SwipeLike)
	require.NoError(t, err)
	assert.Equal(t, 1, e.SwipesUsed)
	assert.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), e.ResetsAt)
}

func TestServiceImpl_RecordSwipe_Premium(t *testing.T) {
	s, _ := newTestService(2, time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC))
	ctx := context.Background()

	for range 10 {
		_, err := s.RecordSwipe(ctx, "user-1", types.PlanPremiumMonthly, types.SwipeSuperLike)
		require.NoError(t, err)
	}
	e := s.Get(ctx, "user-1", types.PlanPremiumMonthly)
	assert.Equal(t, 10, e.SwipesUsed)
	assert.Equal(t, types.Unlimited, e.SwipesRemaining)
}

func TestServiceImpl_RecordSwipe_Rejections(t *testing.T) {
	s, _ := newTestService(5, time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC))
	ctx := context.Background()

	_, err := s.RecordSwipe(ctx, "user-1", types.PlanFree, types.SwipeSuperLike)
	require.ErrorIs(t, err, ErrSuperLikeRequiresPremium)

	_, err = s.RecordSwipe(ctx, "user-1", types.PlanFree, "sideways")
	require.ErrorIs(t, err, ErrInvalidDirection)

	assert.Equal(t, 0, s.Get(ctx, "user-1", types.PlanFree).SwipesUsed, "rejected swipes are not counted")
}

func TestServiceImpl_RecordSwipe_Concurrent(t *testing.T) {
	s, _ := newTestService(25, time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC))
	ctx := context.Background()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
		rejected int
	)
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.RecordSwipe(ctx, "user-1", types.PlanFree, types.SwipeLike)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				rejected++
				return
			}
			accepted++
		}()
	}
	wg.Wait()

	assert.Equal(t, 25, accepted)
	assert.Equal(t, 75, rejected)
	assert.Equal(t, 25, s.Get(ctx, "user-1", types.PlanFree).SwipesUsed)
}
