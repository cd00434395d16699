package keymap

import "testing"

func TestBindingsCoverEveryAction(t *testing.T) {
	for _, action := range Actions {
		found := false
		for _, b := range Bindings {
			if b.Action == action {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected action %q in default bindings", action)
		}
	}
}

func TestBindingsHaveRequiredFields(t *testing.T) {
	for i, b := range Bindings {
		if b.Action == "" {
			t.Errorf("binding[%d] has empty Action", i)
		}
		if len(b.Keys) == 0 {
			t.Errorf("binding[%d] (%s) has no Keys", i, b.Action)
		}
		if b.Description == "" {
			t.Errorf("binding[%d] (%s) has empty Description", i, b.Action)
		}
	}
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		in   byte
		want string
	}{
		{'q', "q"},
		{'Q', "Q"},
		{' ', "space"},
		{0x03, "ctrl+c"},
		{0x1b, "esc"},
		{'\r', "enter"},
		{0x7f, "backspace"},
		{0x01, ""},
		{0xff, ""},
	}
	for _, tt := range tests {
		if got := KeyName(tt.in); got != tt.want {
			t.Errorf("KeyName(%#x) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOverride(t *testing.T) {
	bindings := Override(Bindings, map[string]string{
		"next_track": "x",
		"quit":       "l",
		"bogus":      "z",
		"seek_back":  "",
	})
	r := NewResolver(bindings)

	if got := r.Resolve("x"); got != ActionNextTrack {
		t.Errorf("Resolve(x) = %q, want %q", got, ActionNextTrack)
	}
	if got := r.Resolve("l"); got != ActionQuit {
		t.Errorf("Resolve(l) = %q, want %q", got, ActionQuit)
	}
	// quit lost its default keys, including ctrl+c
	if got := r.Resolve("q"); got != "" {
		t.Errorf("Resolve(q) = %q, want unbound", got)
	}
	if got := r.Resolve("z"); got != "" {
		t.Errorf("Resolve(z) = %q, want unbound", got)
	}
	if got := r.Resolve("n"); got != ActionSeekBack {
		t.Errorf("Resolve(n) = %q, want %q", got, ActionSeekBack)
	}
}

func TestOverride_SharedKeyIsDeterministic(t *testing.T) {
	overrides := map[string]string{"next_track": "x", "prev_track": "x", "quit": "x"}

	for range 20 {
		r := NewResolver(Override(Bindings, overrides))
		if got := r.Resolve("x"); got != ActionQuit {
			t.Fatalf("Resolve(x) = %q, want %q", got, ActionQuit)
		}
		if keys := r.KeysFor(ActionNextTrack); len(keys) != 0 {
			t.Fatalf("KeysFor(next_track) = %v, want none", keys)
		}
	}
}

func TestOverrideDoesNotMutateDefaults(t *testing.T) {
	Override(Bindings, map[string]string{"quit": "x", "prev_track": "q"})

	r := Default()
	if got := r.Resolve("q"); got != ActionQuit {
		t.Errorf("default Resolve(q) = %q, want %q", got, ActionQuit)
	}
	if got := r.Resolve("h"); got != ActionPrevTrack {
		t.Errorf("default Resolve(h) = %q, want %q", got, ActionPrevTrack)
	}
}

func TestActionValid(t *testing.T) {
	if !ActionSeekForward.Valid() {
		t.Error("seek_forward should be valid")
	}
	if Action("play").Valid() {
		t.Error("play should not be valid")
	}
}
