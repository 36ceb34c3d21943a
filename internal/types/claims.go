package types

import "github.com/golang-jwt/jwt/v5"

// Claims represents the custom claims included in the JWT access token.
type Claims struct {
	UserID             string `json:"uid"`           // Custom claim for User ID.
	Email              string `json:"eml,omitempty"` // Custom claim for Email.
	Role               string `json:"rol,omitempty"`
	SubscriptionPlan   string `json:"pln,omitempty"` // e.g. 'free', 'premium_monthly'
	SubscriptionStatus string `json:"sts,omitempty"` // e.g. 'active', 'trialing'
	jwt.RegisteredClaims
}
