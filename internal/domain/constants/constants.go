// Package constants defines shared domain-level constants.
package constants

// Pub/Sub provider types for the order event publisher.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Role names carried in access tokens and checked by the authorization middleware.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
