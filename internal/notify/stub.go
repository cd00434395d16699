//go:build !linux

package notify

import "errors"

// New reports that notifications are unsupported; they go over D-Bus.
func New() (Notifier, error) {
	return nil, errors.New("desktop notifications require linux")
}
