package feed

import (
	"context"
	"log/slog"
	"math"
	"slices"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/tailcircle-api/app/observability/metrics"
	"github.com/FACorreiaa/tailcircle-api/config"
	"github.com/FACorreiaa/tailcircle-api/internal/demo"
	"github.com/FACorreiaa/tailcircle-api/internal/types"
)

const (
	sourceLive = "live"
	sourceDemo = "demo"

	earthRadiusMiles = 3958.8
)

var _ Service = (*ServiceImpl)(nil)

// Service assembles the swipe feed.
type Service interface {
	// LoadFeed never fails: when live profiles are missing or the query
	// errors, demo profiles for the viewer's region are returned instead.
	LoadFeed(ctx context.Context, req types.FeedRequest) *types.FeedResult
}

type ServiceImpl struct {
	logger    *slog.Logger
	repo      Repository
	generator *demo.Generator
	limits    config.FeedConfig
}

func NewServiceImpl(repo Repository, generator *demo.Generator, limits config.FeedConfig, logger *slog.Logger) *ServiceImpl {
	if generator == nil {
		generator = demo.NewGenerator(nil, nil)
	}
	return &ServiceImpl{
		logger:    logger,
		repo:      repo,
		generator: generator,
		limits:    limits,
	}
}

func (s *ServiceImpl) LoadFeed(ctx context.Context, req types.FeedRequest) *types.FeedResult {
	limit := s.clampLimit(req.Limit)
	ctx, span := otel.Tracer("FeedService").Start(ctx, "LoadFeed", trace.WithAttributes(
		attribute.String("user.id", req.UserID.String()),
		attribute.Int("limit", limit),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "LoadFeed"), slog.String("userID", req.UserID.String()))
	m := metrics.Get()

	rows, err := s.repo.QueryProfiles(ctx, types.ProfileFilter{ExcludeUserID: req.UserID, IsDemo: false}, limit)
	if err == nil && len(rows) > 0 {
		profiles := make([]types.FeedProfile, 0, len(rows))
		for _, row := range rows {
			profiles = append(profiles, normalizeRow(row, req.Location))
		}
		l.DebugContext(ctx, "Serving live feed", slog.Int("count", len(profiles)))
		m.FeedRequestsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("source", sourceLive)))
		span.SetAttributes(attribute.String("feed.source", sourceLive), attribute.Int("feed.count", len(profiles)))
		span.SetStatus(codes.Ok, "Live feed served")
		return &types.FeedResult{Profiles: profiles, IsDemo: false}
	}

	regionKey := demo.RegionKeyFor(req.Location)
	result := &types.FeedResult{
		Profiles:  fromDemo(s.generator.ProfilesForRegion(regionKey, limit)),
		IsDemo:    true,
		RegionKey: regionKey,
	}
	if err != nil {
		result.FallbackReason = err.Error()
		l.WarnContext(ctx, "Live profile query failed, serving demo profiles",
			slog.String("regionKey", regionKey), slog.Any("error", err))
		span.RecordError(err)
		m.FeedFallbackErrorsTotal.Add(ctx, 1)
	} else {
		l.InfoContext(ctx, "No live profiles, serving demo profiles", slog.String("regionKey", regionKey))
	}
	m.FeedRequestsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("source", sourceDemo)))
	span.SetAttributes(
		attribute.String("feed.source", sourceDemo),
		attribute.String("feed.region_key", regionKey),
		attribute.Int("feed.count", len(result.Profiles)),
	)
	span.SetStatus(codes.Ok, "Demo feed served")
	return result
}

func (s *ServiceImpl) clampLimit(limit int) int {
	if limit <= 0 {
		limit = s.limits.DefaultLimit
	}
	if s.limits.MaxLimit > 0 && limit > s.limits.MaxLimit {
		limit = s.limits.MaxLimit
	}
	return limit
}

func normalizeRow(row types.ProfileRow, viewer demo.Location) types.FeedProfile {
	p := types.FeedProfile{
		ID:       row.ID.String(),
		Name:     strings.TrimSpace(row.Name),
		Size:     string(demo.SizeMedium),
		Traits:   dedupeTraits(row.Traits),
		Verified: row.Verified,
	}
	if row.Age != nil {
		p.Age = *row.Age
	}
	if row.Breed != nil {
		p.Breed = strings.TrimSpace(*row.Breed)
	}
	if row.Size != nil && *row.Size != "" {
		p.Size = *row.Size
	}
	if row.Neighborhood != nil {
		p.Neighborhood = *row.Neighborhood
	}
	if row.About != nil {
		p.About = *row.About
	}
	if row.PhotoURL != nil {
		p.PhotoURL = *row.PhotoURL
	}
	if row.LastActiveAt != nil {
		p.LastActive = row.LastActiveAt.UTC()
	}
	if row.Latitude != nil && row.Longitude != nil && viewer.Lat != nil && viewer.Lng != nil {
		d := math.Round(haversineMiles(*viewer.Lat, *viewer.Lng, *row.Latitude, *row.Longitude)*10) / 10
		p.DistanceMiles = &d
	}
	return p
}

func dedupeTraits(traits []string) []string {
	out := make([]string, 0, len(traits))
	for _, t := range traits {
		t = strings.TrimSpace(t)
		if t == "" || slices.Contains(out, t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func fromDemo(profiles []demo.Profile) []types.FeedProfile {
	out := make([]types.FeedProfile, 0, len(profiles))
	for _, p := range profiles {
		distance := p.DistanceMiles
		out = append(out, types.FeedProfile{
			ID:            p.ID.String(),
			Name:          p.Name,
			Age:           p.Age,
			Breed:         p.Breed,
			Size:          string(p.Size),
			DistanceMiles: &distance,
			Neighborhood:  p.Neighborhood,
			About:         p.About,
			Traits:        p.Traits,
			PhotoURL:      p.PhotoURL,
			PhotoAlt:      p.PhotoAlt,
			LastActive:    p.LastActive,
			Verified:      p.Verified,
			IsDemo:        true,
		})
	}
	return out
}

func haversineMiles(lat1, lng1, lat2, lng2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusMiles * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
