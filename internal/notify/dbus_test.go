//go:build linux

package notify

import (
	"errors"
	"os"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBus struct {
	method string
	args   []any
	reply  *dbus.Call
}

func (f *fakeBus) Call(method string, _ dbus.Flags, args ...any) *dbus.Call {
	f.method = method
	f.args = args
	return f.reply
}

func TestBusNotifier_Arguments(t *testing.T) {
	bus := &fakeBus{reply: &dbus.Call{Body: []any{uint32(42)}}}
	n := &busNotifier{obj: bus}

	id, err := n.Notify(Notification{
		Title:      "Song",
		Body:       "Artist - Album",
		Icon:       "/music/cover.jpg",
		Timeout:    5000,
		ReplacesID: 41,
		Urgency:    UrgencyLow,
	})
	require.NoError(t, err)
	assert.Equal(t, uint32(42), id)

	assert.Equal(t, "org.freedesktop.Notifications.Notify", bus.method)
	require.Len(t, bus.args, 8)
	assert.Equal(t, "tplay", bus.args[0])
	assert.Equal(t, uint32(41), bus.args[1])
	assert.Equal(t, "/music/cover.jpg", bus.args[2])
	assert.Equal(t, "Song", bus.args[3])
	assert.Equal(t, "Artist - Album", bus.args[4])
	assert.Equal(t, int32(5000), bus.args[7])

	hints, ok := bus.args[6].(map[string]dbus.Variant)
	require.True(t, ok)
	assert.Equal(t, byte(UrgencyLow), hints["urgency"].Value())
}

func TestBusNotifier_CallError(t *testing.T) {
	n := &busNotifier{obj: &fakeBus{reply: &dbus.Call{Err: errors.New("no server")}}}

	id, err := n.Notify(Notification{Title: "x"})
	require.ErrorContains(t, err, "no server")
	assert.Zero(t, id)
}

func TestNew_LiveSession(t *testing.T) {
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		t.Skip("no D-Bus session available")
	}

	n, err := New()
	require.NoError(t, err)

	first, err := n.Notify(Notification{Title: "tplay test", Timeout: 1000})
	require.NoError(t, err)
	second, err := n.Notify(Notification{Title: "tplay test 2", Timeout: 1000, ReplacesID: first})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
