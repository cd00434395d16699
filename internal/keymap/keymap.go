package keymap

import (
	"slices"

	"github.com/samber/lo"
)

// Binding describes the keys bound to one action.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
}

// Bindings contains the default key bindings, in help order.
var Bindings = []Binding{
	{ActionQuit, []string{"q", "ctrl+c"}, "quit"},
	{ActionPrevTrack, []string{"h"}, "prev"},
	{ActionNextTrack, []string{"l"}, "next"},
	{ActionCycleMode, []string{"r"}, "mode"},
	{ActionTogglePause, []string{"space"}, "pause"},
	{ActionVolumeUp, []string{"k"}, "vol+"},
	{ActionVolumeDown, []string{"j"}, "vol-"},
	{ActionSeekForward, []string{"m"}, "+5s"},
	{ActionSeekBack, []string{"n"}, "-5s"},
}

// KeyName returns the binding name of a raw input byte.
// Printable ASCII maps to itself; a few control bytes have names.
func KeyName(b byte) string {
	switch b {
	case ' ':
		return "space"
	case 0x03:
		return "ctrl+c"
	case 0x1b:
		return "esc"
	case '\r', '\n':
		return "enter"
	case '\t':
		return "tab"
	case 0x7f:
		return "backspace"
	}
	if b > ' ' && b < 0x7f {
		return string(rune(b))
	}
	return ""
}

// Override rebinds actions. Each entry replaces all default keys of its
// action with the single given key. Unknown actions and empty keys are
// ignored. A key taken by an override is removed from other actions.
// Overrides apply in action-name order, so when two of them claim the same
// key the alphabetically last action keeps it.
func Override(bindings []Binding, overrides map[string]string) []Binding {
	out := make([]Binding, len(bindings))
	for i, b := range bindings {
		keys := make([]string, len(b.Keys))
		copy(keys, b.Keys)
		out[i] = Binding{Action: b.Action, Keys: keys, Description: b.Description}
	}

	names := lo.Keys(overrides)
	slices.Sort(names)
	for _, name := range names {
		key := overrides[name]
		action := Action(name)
		if !action.Valid() || key == "" {
			continue
		}
		for i := range out {
			if out[i].Action == action {
				out[i].Keys = []string{key}
				continue
			}
			out[i].Keys = without(out[i].Keys, key)
		}
	}
	return out
}

func without(keys []string, key string) []string {
	result := keys[:0]
	for _, k := range keys {
		if k != key {
			result = append(result, k)
		}
	}
	return result
}
