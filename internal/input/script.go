package input

// NoKey marks a frame without a key press in a Script.
const NoKey byte = 0

// Script is a deterministic key source: each PollKey consumes one entry.
// Once exhausted it reports no keys.
type Script struct {
	keys []byte
	pos  int
}

// NewScript creates a script from keys. Use NoKey for idle frames.
func NewScript(keys ...byte) *Script {
	return &Script{keys: keys}
}

// Idle returns n NoKey entries, for building scripts.
func Idle(n int) []byte {
	return make([]byte, n)
}

// PollKey returns the next scripted key.
func (s *Script) PollKey() (byte, bool) {
	if s.pos >= len(s.keys) {
		return 0, false
	}
	k := s.keys[s.pos]
	s.pos++
	if k == NoKey {
		return 0, false
	}
	return k, true
}

// Remaining returns the number of entries not yet consumed.
func (s *Script) Remaining() int {
	return len(s.keys) - s.pos
}
