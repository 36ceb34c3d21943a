package types

import "time"

// Plan values carried in the JWT "pln" claim.
const (
	PlanFree           = "free"
	PlanPremiumMonthly = "premium_monthly"
	PlanPremiumYearly  = "premium_yearly"
)

// Unlimited marks a limit or remaining count that does not apply.
const Unlimited = -1

// Entitlements describes what the current user may do today.
type Entitlements struct {
	Plan              string    `json:"plan" example:"free"`
	IsPremium         bool      `json:"is_premium"`
	DailySwipeLimit   int       `json:"daily_swipe_limit" example:"25"`
	SwipesUsed        int       `json:"swipes_used" example:"3"`
	SwipesRemaining   int       `json:"swipes_remaining" example:"22"`
	CanSeeWhoLikedYou bool      `json:"can_see_who_liked_you"`
	CanUseSuperLike   bool      `json:"can_use_super_like"`
	ResetsAt          time.Time `json:"resets_at"`
}

// SwipeDirection is the gesture the user made on a card.
type SwipeDirection string

const (
	SwipeLike      SwipeDirection = "like"
	SwipePass      SwipeDirection = "pass"
	SwipeSuperLike SwipeDirection = "super_like"
)

// Valid reports whether d is a known direction.
func (d SwipeDirection) Valid() bool {
	switch d {
	case SwipeLike, SwipePass, SwipeSuperLike:
		return true
	}
	return false
}

// SwipeRequest is the JSON body of POST /swipes.
type SwipeRequest struct {
	ProfileID string         `json:"profile_id" example:"b7a3c3a4-0f3e-4b7e-9d7a-3c1f5d2a9e10"`
	Direction SwipeDirection `json:"direction" example:"like"`
}
