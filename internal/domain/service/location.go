package service

import (
	"time"

	"wildnav/internal/domain/entity"
)

// LocationFix is one reading of the device position and, if available, its compass heading
type LocationFix struct {
	Coordinate entity.Coordinate `json:"coordinate"`
	Heading    *float64          `json:"heading,omitempty"` // degrees in [0,360), nil when unknown
	Timestamp  time.Time         `json:"timestamp"`
}

// Subscription is a handle to a live location subscription
type Subscription interface {
	// Cancel stops delivery. It is safe to call more than once.
	Cancel()
}

// LocationProvider exposes the latest known device location
type LocationProvider interface {
	// Latest returns the most recent fix and whether one has been received
	Latest() (LocationFix, bool)

	// Subscribe registers fn for future fixes. Delivery is last-value-wins: a slow
	// subscriber only sees the newest fix, never a backlog.
	Subscribe(fn func(LocationFix)) Subscription
}

// LocationSource is a LocationProvider fed by explicit pushes
type LocationSource interface {
	LocationProvider

	// Start enables delivery to subscribers
	Start()

	// Stop cancels every subscription and rejects further pushes
	Stop()

	// Push publishes a new fix
	Push(fix LocationFix) error
}

// LocationSourceFactory creates one LocationSource per navigation session
type LocationSourceFactory interface {
	NewSource() LocationSource
}
