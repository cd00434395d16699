// Package notify announces track changes as desktop notifications.
package notify

// Urgency is the freedesktop urgency hint.
type Urgency byte

const (
	UrgencyLow Urgency = iota
	UrgencyNormal
	UrgencyCritical
)

// Notification is one popup. Timeout is in milliseconds; -1 leaves it to
// the server and 0 keeps it open. A non-zero ReplacesID updates an earlier
// popup in place.
type Notification struct {
	Title      string
	Body       string
	Icon       string
	Timeout    int32
	ReplacesID uint32
	Urgency    Urgency
}

// Notifier delivers notifications and returns the id the server assigned.
type Notifier interface {
	Notify(n Notification) (uint32, error)
}
