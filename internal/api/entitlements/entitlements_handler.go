package entitlements

import (
	"errors"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/tailcircle-api/internal/api"
	"github.com/FACorreiaa/tailcircle-api/internal/api/auth"
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

// GetEntitlements godoc
// @Summary      Get Entitlements
// @Description  Returns the caller's plan features and today's swipe allowance.
// @Tags         Entitlements
// @Produce      json
// @Success      200 {object} types.Entitlements "Entitlements"
// @Failure      401 {object} api.ErrorBody "Unauthorized"
// @Security     BearerAuth
// @Router       /entitlements [get]
func (h *HandlerImpl) GetEntitlements(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("EntitlementsHandler").Start(r.Context(), "GetEntitlements", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/entitlements"),
	))
	defer span.End()

	userID, ok := auth.GetUserIDFromContext(ctx)
	if !ok || userID == "" {
		h.logger.ErrorContext(ctx, "User ID not found in context", slog.String("handler", "GetEntitlements"))
		api.ErrorResponse(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}
	span.SetAttributes(semconv.EnduserIDKey.String(userID))
	plan, _ := auth.GetUserPlanFromContext(ctx)

	api.WriteJSONResponse(w, r, http.StatusOK, h.service.Get(ctx, userID, plan))
}

// RecordSwipe godoc
// @Summary      Record Swipe
// @Description  Counts a swipe against the caller's daily allowance. Free plans are limited per UTC day; super likes are premium only.
// @Tags         Entitlements
// @Accept       json
// @Produce      json
// @Param        swipe body types.SwipeRequest true "Swipe"
// @Success      200 {object} types.Entitlements "Updated entitlements"
// @Failure      400 {object} api.ErrorBody "Bad Request"
// @Failure      401 {object} api.ErrorBody "Unauthorized"
// @Failure      403 {object} api.ErrorBody "Premium required"
// @Failure      429 {object} api.ErrorBody "Daily limit reached"
// @Security     BearerAuth
// @Router       /swipes [post]
func (h *HandlerImpl) RecordSwipe(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("EntitlementsHandler").Start(r.Context(), "RecordSwipe", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/swipes"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "RecordSwipe"))

	userID, ok := auth.GetUserIDFromContext(ctx)
	if !ok || userID == "" {
		l.ErrorContext(ctx, "User ID not found in context")
		api.ErrorResponse(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}
	span.SetAttributes(semconv.EnduserIDKey.String(userID))
	plan, _ := auth.GetUserPlanFromContext(ctx)

	var req types.SwipeRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.ProfileID == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "profile_id is required")
		return
	}

	ent, err := h.service.RecordSwipe(ctx, userID, plan, req.Direction)
	switch {
	case errors.Is(err, ErrInvalidDirection):
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrSuperLikeRequiresPremium):
		api.ErrorResponse(w, r, http.StatusForbidden, "Super likes require a premium plan")
	case errors.Is(err, ErrDailyLimitReached):
		api.ErrorResponse(w, r, http.StatusTooManyRequests, "Daily swipe limit reached")
	case err != nil:
		l.ErrorContext(ctx, "Failed to record swipe", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to record swipe")
	default:
		l.InfoContext(ctx, "Swipe recorded",
			slog.String("profileID", req.ProfileID),
			slog.String("direction", string(req.Direction)),
			slog.Int("remaining", ent.SwipesRemaining))
		api.WriteJSONResponse(w, r, http.StatusOK, ent)
	}
}
