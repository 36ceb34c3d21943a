package feed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/tailcircle-api/app/observability/metrics"
	"github.com/FACorreiaa/tailcircle-api/internal/types"
)

var _ Repository = (*PostgresRepository)(nil)

// Repository is the storage collaborator of the feed.
type Repository interface {
	// QueryProfiles returns up to limit profiles matching filter, most
	// recently active first.
	QueryProfiles(ctx context.Context, filter types.ProfileFilter, limit int) ([]types.ProfileRow, error)
}

// DBTX is the subset of pgxpool.Pool the repository needs.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type PostgresRepository struct {
	logger *slog.Logger
	db     DBTX
}

func NewPostgresRepository(db DBTX, logger *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		logger: logger,
		db:     db,
	}
}

const queryProfilesSQL = `
	SELECT id, owner_id, name, age, breed, size, neighborhood, about,
	       traits, photo_url, latitude, longitude, verified, last_active_at
	FROM dog_profiles
	WHERE owner_id <> $1 AND is_demo = $2
	ORDER BY last_active_at DESC NULLS LAST, created_at DESC
	LIMIT $3`

func (r *PostgresRepository) QueryProfiles(ctx context.Context, filter types.ProfileFilter, limit int) ([]types.ProfileRow, error) {
	ctx, span := otel.Tracer("FeedRepository").Start(ctx, "QueryProfiles", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "dog_profiles"),
		attribute.String("db.operation", "SELECT"),
		attribute.Int("limit", limit),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "QueryProfiles"), slog.String("excludeUserID", filter.ExcludeUserID.String()))
	m := metrics.Get()
	start := time.Now()
	opAttr := metric.WithAttributes(attribute.String("db.operation", "query_profiles"))
	defer func() {
		m.DbQueryDurationSeconds.Record(ctx, time.Since(start).Seconds(), opAttr)
	}()

	rows, err := r.db.Query(ctx, queryProfilesSQL, filter.ExcludeUserID, filter.IsDemo, limit)
	if err != nil {
		l.ErrorContext(ctx, "Failed to query dog profiles", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB SELECT failed")
		m.DbQueryErrorsTotal.Add(ctx, 1, opAttr)
		return nil, fmt.Errorf("database error querying profiles: %w", err)
	}
	defer rows.Close()

	var profiles []types.ProfileRow
	for rows.Next() {
		var p types.ProfileRow
		if err := rows.Scan(
			&p.ID, &p.OwnerID, &p.Name, &p.Age, &p.Breed, &p.Size, &p.Neighborhood, &p.About,
			&p.Traits, &p.PhotoURL, &p.Latitude, &p.Longitude, &p.Verified, &p.LastActiveAt,
		); err != nil {
			l.ErrorContext(ctx, "Failed to scan dog profile row", slog.Any("error", err))
			span.RecordError(err)
			span.SetStatus(codes.Error, "Row scan failed")
			m.DbQueryErrorsTotal.Add(ctx, 1, opAttr)
			return nil, fmt.Errorf("failed to scan profile row: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		l.ErrorContext(ctx, "Error iterating dog profile rows", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Row iteration failed")
		m.DbQueryErrorsTotal.Add(ctx, 1, opAttr)
		return nil, fmt.Errorf("error iterating profile rows: %w", err)
	}

	l.DebugContext(ctx, "Dog profiles fetched", slog.Int("count", len(profiles)))
	span.SetAttributes(attribute.Int("profiles.count", len(profiles)))
	span.SetStatus(codes.Ok, "Profiles fetched")
	return profiles, nil
}
