package entitlements

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/tailcircle-api/app/observability/metrics"
	"github.com/FACorreiaa/tailcircle-api/config"
	"github.com/FACorreiaa/tailcircle-api/internal/types"
)

const defaultFreeDailySwipes = 25

var (
	ErrDailyLimitReached        = errors.New("daily swipe limit reached")
	ErrSuperLikeRequiresPremium = errors.New("super like requires a premium plan")
	ErrInvalidDirection         = errors.New("invalid swipe direction")
)

var _ Service = (*ServiceImpl)(nil)

// Service answers what a user's plan allows and counts their swipes.
type Service interface {
	Get(ctx context.Context, userID, plan string) types.Entitlements
	RecordSwipe(ctx context.Context, userID, plan string, direction types.SwipeDirection) (types.Entitlements, error)
}

type ServiceImpl struct {
	logger          *slog.Logger
	counters        *cache.Cache
	freeDailySwipes int
	now             func() time.Time

	mu sync.Mutex
}

func NewServiceImpl(cfg config.EntitlementsConfig, logger *slog.Logger) *ServiceImpl {
	limit := cfg.FreeDailySwipes
	if limit <= 0 {
		limit = defaultFreeDailySwipes
	}
	return &ServiceImpl{
		logger:          logger,
		counters:        cache.New(24*time.Hour, time.Hour),
		freeDailySwipes: limit,
		now:             time.Now,
	}
}

// IsPremium reports whether plan is one of the paid tiers.
func IsPremium(plan string) bool {
	return strings.HasPrefix(plan, "premium")
}

func (s *ServiceImpl) Get(ctx context.Context, userID, plan string) types.Entitlements {
	_, span := otel.Tracer("EntitlementsService").Start(ctx, "Get", trace.WithAttributes(
		attribute.String("user.id", userID),
		attribute.String("plan", plan),
	))
	defer span.End()

	now := s.now().UTC()
	used, _ := s.counters.Get(counterKey(userID, now))
	n, _ := used.(int)
	return s.entitlementsFor(plan, n, now)
}

func (s *ServiceImpl) RecordSwipe(ctx context.Context, userID, plan string, direction types.SwipeDirection) (types.Entitlements, error) {
	ctx, span := otel.Tracer("EntitlementsService").Start(ctx, "RecordSwipe", trace.WithAttributes(
		attribute.String("user.id", userID),
		attribute.String("plan", plan),
		attribute.String("direction", string(direction)),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "RecordSwipe"), slog.String("userID", userID))
	m := metrics.Get()

	if !direction.Valid() {
		span.SetStatus(codes.Error, "invalid direction")
		return types.Entitlements{}, fmt.Errorf("%w: %q", ErrInvalidDirection, direction)
	}
	premium := IsPremium(plan)
	if direction == types.SwipeSuperLike && !premium {
		span.SetStatus(codes.Error, "super like not allowed")
		return s.Get(ctx, userID, plan), ErrSuperLikeRequiresPremium
	}

	now := s.now().UTC()
	key := counterKey(userID, now)

	s.mu.Lock()
	used, _ := s.counters.Get(key)
	n, _ := used.(int)
	if !premium && n >= s.freeDailySwipes {
		s.mu.Unlock()
		l.InfoContext(ctx, "Daily swipe limit reached", slog.Int("used", n))
		m.SwipeLimitHitsTotal.Add(ctx, 1)
		span.SetStatus(codes.Error, ErrDailyLimitReached.Error())
		return s.entitlementsFor(plan, n, now), ErrDailyLimitReached
	}
	n++
	s.counters.Set(key, n, nextReset(now).Sub(now))
	s.mu.Unlock()

	m.SwipesTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("direction", string(direction)),
		attribute.Bool("premium", premium),
	))
	l.DebugContext(ctx, "Swipe recorded", slog.String("direction", string(direction)), slog.Int("used", n))
	span.SetStatus(codes.Ok, "Swipe recorded")
	return s.entitlementsFor(plan, n, now), nil
}

func (s *ServiceImpl) entitlementsFor(plan string, used int, now time.Time) types.Entitlements {
	if plan == "" {
		plan = types.PlanFree
	}
	e := types.Entitlements{
		Plan:       plan,
		IsPremium:  IsPremium(plan),
		SwipesUsed: used,
		ResetsAt:   nextReset(now),
	}
	if e.IsPremium {
		e.DailySwipeLimit = types.Unlimited
		e.SwipesRemaining = types.Unlimited
		e.CanSeeWhoLikedYou = true
		e.CanUseSuperLike = true
		return e
	}
	e.DailySwipeLimit = s.freeDailySwipes
	e.SwipesRemaining = max(s.freeDailySwipes-used, 0)
	return e
}

func counterKey(userID string, now time.Time) string {
	return "swipes:" + userID + ":" + now.Format(time.DateOnly)
}

// nextReset is the next UTC midnight after now.
func nextReset(now time.Time) time.Time {
	y, mo, d := now.UTC().Date()
	return time.Date(y, mo, d+1, 0, 0, 0, 0, time.UTC)
}
