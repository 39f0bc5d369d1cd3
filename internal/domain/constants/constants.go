// Package constants holds values shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Pub/Sub message attributes
const (
	AttrEventType = "event_type"
	AttrRequestID = "request_id"
)

// EventTypeMealLogged marks MealLoggedEvent messages.
const EventTypeMealLogged = "meal_logged"
