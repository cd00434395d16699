package keymap

import (
	"strings"

	"github.com/samber/lo"
)

// Resolver looks up the action bound to a key. When two bindings claim the
// same key, the later one wins.
type Resolver struct {
	actions map[string]Action
	keys    map[Action][]string
	order   []Binding
}

// NewResolver indexes bindings in both directions.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actions: make(map[string]Action),
		keys:    make(map[Action][]string),
		order:   lo.UniqBy(bindings, func(b Binding) Action { return b.Action }),
	}
	for _, b := range bindings {
		for _, k := range b.Keys {
			r.actions[k] = b.Action
		}
		r.keys[b.Action] = lo.Uniq(append(r.keys[b.Action], b.Keys...))
	}
	return r
}

// Default resolves the built-in bindings.
func Default() *Resolver {
	return NewResolver(Bindings)
}

// Resolve returns the action bound to a key name, or "".
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// ResolveByte resolves a raw input byte through its key name.
func (r *Resolver) ResolveByte(b byte) Action {
	if name := KeyName(b); name != "" {
		return r.actions[name]
	}
	return ""
}

func (r *Resolver) KeysFor(action Action) []string {
	return r.keys[action]
}

// HelpLine lists "key:description" for each bound action in binding order,
// showing only the first key.
func (r *Resolver) HelpLine() string {
	var b strings.Builder
	for _, bind := range r.order {
		keys := r.keys[bind.Action]
		if len(keys) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("  ")
		}
		b.WriteString(keys[0] + ":" + bind.Description)
	}
	return b.String()
}
