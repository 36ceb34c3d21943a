package feed

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/tailcircle-api/internal/api"
	"github.com/FACorreiaa/tailcircle-api/internal/api/auth"
	"github.com/FACorreiaa/tailcircle-api/internal/demo"
	"github.com/FACorreiaa/tailcircle-api/internal/types"
)

type HandlerImpl struct {
	logger  *slog.Logger
	service Service
}

func NewHandlerImpl(service Service, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		logger:  logger,
		service: service,
	}
}

// GetFeed godoc
// @Summary      Get Swipe Feed
// @Description  Returns dog profiles for the swipe deck. When no live profiles exist, or the profile store fails, stable demo profiles for the caller's region are returned with is_demo=true.
// @Tags         Feed
// @Produce      json
// @Param        limit  query int    false "Number of profiles (default 20, max 100)"
// @Param        state  query string false "State or province of the viewer"
// @Param        county query string false "County of the viewer"
// @Param        lat    query number false "Latitude of the viewer"
// @Param        lng    query number false "Longitude of the viewer"
// @Success      200 {object} types.FeedResult "Feed"
// @Failure      400 {object} api.ErrorBody "Bad Request"
// @Failure      401 {object} api.ErrorBody "Unauthorized"
// @Security     BearerAuth
// @Router       /feed [get]
func (h *HandlerImpl) GetFeed(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("FeedHandler").Start(r.Context(), "GetFeed", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/feed"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetFeed"))

	userIDStr, ok := auth.GetUserIDFromContext(ctx)
	if !ok || userIDStr == "" {
		l.ErrorContext(ctx, "User ID not found in context")
		api.ErrorResponse(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		l.ErrorContext(ctx, "Invalid user ID format", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid user ID format")
		return
	}
	span.SetAttributes(semconv.EnduserIDKey.String(userID.String()))

	q := r.URL.Query()
	req := types.FeedRequest{
		UserID: userID,
		Location: demo.Location{
			State:  q.Get("state"),
			County: q.Get("county"),
		},
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			l.WarnContext(ctx, "Invalid limit", slog.String("limit", v))
			api.ErrorResponse(w, r, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		req.Limit = limit
	}
	if req.Location.Lat, err = parseCoordinate(q.Get("lat"), 90); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "lat must be a number between -90 and 90")
		return
	}
	if req.Location.Lng, err = parseCoordinate(q.Get("lng"), 180); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "lng must be a number between -180 and 180")
		return
	}

	result := h.service.LoadFeed(ctx, req)
	l.InfoContext(ctx, "Feed loaded",
		slog.Int("count", len(result.Profiles)),
		slog.Bool("isDemo", result.IsDemo),
		slog.String("regionKey", result.RegionKey))
	api.WriteJSONResponse(w, r, http.StatusOK, result)
}

func parseCoordinate(v string, bound float64) (*float64, error) {
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(f) || f < -bound || f > bound {
		return nil, strconv.ErrRange
	}
	return &f, nil
}
