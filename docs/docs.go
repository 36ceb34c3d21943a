// Package docs registers the OpenAPI document served under /swagger.
// Regenerate with: swag init -g main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/entitlements": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns the caller's plan features and today's swipe allowance.",
                "produces": ["application/json"],
                "tags": ["Entitlements"],
                "summary": "Get Entitlements",
                "responses": {
                    "200": {"description": "Entitlements", "schema": {"$ref": "#/definitions/types.Entitlements"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.ErrorBody"}}
                }
            }
        },
        "/feed": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns dog profiles for the swipe deck. When no live profiles exist, or the profile store fails, stable demo profiles for the caller's region are returned with is_demo=true.",
                "produces": ["application/json"],
                "tags": ["Feed"],
                "summary": "Get Swipe Feed",
                "parameters": [
                    {"type": "integer", "description": "Number of profiles (default 20, max 100)", "name": "limit", "in": "query"},
                    {"type": "string", "description": "State or province of the viewer", "name": "state", "in": "query"},
                    {"type": "string", "description": "County of the viewer", "name": "county", "in": "query"},
                    {"type": "number", "description": "Latitude of the viewer", "name": "lat", "in": "query"},
                    {"type": "number", "description": "Longitude of the viewer", "name": "lng", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Feed", "schema": {"$ref": "#/definitions/types.FeedResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorBody"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.ErrorBody"}}
                }
            }
        },
        "/swipes": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Counts a swipe against the caller's daily allowance. Free plans are limited per UTC day; super likes are premium only.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Entitlements"],
                "summary": "Record Swipe",
                "parameters": [
                    {"description": "Swipe", "name": "swipe", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.SwipeRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated entitlements", "schema": {"$ref": "#/definitions/types.Entitlements"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorBody"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.ErrorBody"}},
                    "403": {"description": "Premium required", "schema": {"$ref": "#/definitions/api.ErrorBody"}},
                    "429": {"description": "Daily limit reached", "schema": {"$ref": "#/definitions/api.ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "api.ErrorBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "Invalid limit"},
                "request_id": {"type": "string"},
                "success": {"type": "boolean", "example": false}
            }
        },
        "types.Entitlements": {
            "type": "object",
            "properties": {
                "can_see_who_liked_you": {"type": "boolean"},
                "can_use_super_like": {"type": "boolean"},
                "daily_swipe_limit": {"type": "integer", "example": 25},
                "is_premium": {"type": "boolean"},
                "plan": {"type": "string", "example": "free"},
                "resets_at": {"type": "string"},
                "swipes_remaining": {"type": "integer", "example": 22},
                "swipes_used": {"type": "integer", "example": 3}
            }
        },
        "types.FeedProfile": {
            "type": "object",
            "properties": {
                "about": {"type": "string"},
                "age": {"type": "integer", "example": 3},
                "breed": {"type": "string", "example": "Corgi"},
                "distance_miles": {"type": "number", "example": 2.4},
                "id": {"type": "string", "example": "b7a3c3a4-0f3e-4b7e-9d7a-3c1f5d2a9e10"},
                "is_demo": {"type": "boolean"},
                "last_active": {"type": "string"},
                "name": {"type": "string", "example": "Luna"},
                "neighborhood": {"type": "string", "example": "Riverside"},
                "photo_alt": {"type": "string"},
                "photo_url": {"type": "string"},
                "size": {"type": "string", "example": "Small"},
                "traits": {"type": "array", "items": {"type": "string"}},
                "verified": {"type": "boolean"}
            }
        },
        "types.FeedResult": {
            "type": "object",
            "properties": {
                "fallback_reason": {"type": "string"},
                "is_demo": {"type": "boolean"},
                "profiles": {"type": "array", "items": {"$ref": "#/definitions/types.FeedProfile"}},
                "region_key": {"type": "string", "example": "ca|los angeles county"}
            }
        },
        "types.SwipeRequest": {
            "type": "object",
            "properties": {
                "direction": {"type": "string", "example": "like"},
                "profile_id": {"type": "string", "example": "b7a3c3a4-0f3e-4b7e-9d7a-3c1f5d2a9e10"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "TailCircle API",
	Description:      "Swipe feed and entitlements for TailCircle dog owners.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
