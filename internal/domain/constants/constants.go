package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderNATS   = "nats"
)

// Directions providers
const (
	DirectionsProviderGoogle   = "google"
	DirectionsProviderPMTiles  = "pmtiles"
	DirectionsProviderStraight = "straight"
)

// Hotspot naming
const (
	HotspotNamePrefix = "High Volume Area"
)
