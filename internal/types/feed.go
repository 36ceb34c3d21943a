package types

import (
	"time"

	"github.com/google/uuid"

	"github.com/FACorreiaa/tailcircle-api/internal/demo"
)

// ProfileFilter narrows the live profile query.
type ProfileFilter struct {
	ExcludeUserID uuid.UUID // the viewer's own dogs never appear in their feed
	IsDemo        bool
}

// ProfileRow mirrors a row of the dog_profiles table. Nullable columns are pointers.
type ProfileRow struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Name         string
	Age          *int
	Breed        *string
	Size         *string
	Neighborhood *string
	About        *string
	Traits       []string
	PhotoURL     *string
	Latitude     *float64
	Longitude    *float64
	Verified     bool
	LastActiveAt *time.Time
}

// FeedProfile is one card in the swipe feed, live or demo.
type FeedProfile struct {
	ID            string    `json:"id" example:"b7a3c3a4-0f3e-4b7e-9d7a-3c1f5d2a9e10"`
	Name          string    `json:"name" example:"Luna"`
	Age           int       `json:"age" example:"3"`
	Breed         string    `json:"breed" example:"Corgi"`
	Size          string    `json:"size" example:"Small"`
	DistanceMiles *float64  `json:"distance_miles,omitempty" example:"2.4"`
	Neighborhood  string    `json:"neighborhood,omitempty" example:"Riverside"`
	About         string    `json:"about,omitempty"`
	Traits        []string  `json:"traits"`
	PhotoURL      string    `json:"photo_url"`
	PhotoAlt      string    `json:"photo_alt,omitempty"`
	LastActive    time.Time `json:"last_active"`
	Verified      bool      `json:"verified"`
	IsDemo        bool      `json:"is_demo"`
}

// FeedRequest is the input of a feed load.
type FeedRequest struct {
	UserID   uuid.UUID
	Location demo.Location
	Limit    int
}

// FeedResult is what the client renders. FallbackReason carries the storage
// error message, if any, that caused demo content to be served.
type FeedResult struct {
	Profiles       []FeedProfile `json:"profiles"`
	IsDemo         bool          `json:"is_demo"`
	RegionKey      string        `json:"region_key,omitempty" example:"ca|los angeles county"`
	FallbackReason string        `json:"fallback_reason,omitempty"`
}
