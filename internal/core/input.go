package core

// Key is a logical key understood by the games.
// Hosts map physical keys onto these; anything else becomes KeyOther.
type Key int

const (
	KeyNone  Key = iota
	KeyLeft      // Left arrow, A
	KeyRight     // Right arrow, D
	KeyUp        // Up arrow, W, Space - jump
	KeyOther     // any other key; still counts as "any key" for screen transitions
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// ParseKey maps a name used on the command line to a Key.
func ParseKey(s string) Key {
	switch s {
	case "left", "Left", "a":
		return KeyLeft
	case "right", "Right", "d":
		return KeyRight
	case "up", "Up", "w", "space", "jump":
		return KeyUp
	case "", "none":
		return KeyNone
	default:
		return KeyOther
	}
}

// KeyEventKind tells a press from a release.
type KeyEventKind uint8

const (
	KeyDown KeyEventKind = iota
	KeyUpEvent
)

// KeyEvent is one key transition delivered by the host.
type KeyEvent struct {
	Kind KeyEventKind
	Key  Key
}

// InputFrame holds the key transitions that arrived since the previous tick.
// Games apply them in order before simulating the tick.
type InputFrame struct {
	Events []KeyEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Press records a key-down.
func (f *InputFrame) Press(k Key) {
	f.Events = append(f.Events, KeyEvent{Kind: KeyDown, Key: k})
}

// Release records a key-up.
func (f *InputFrame) Release(k Key) {
	f.Events = append(f.Events, KeyEvent{Kind: KeyUpEvent, Key: k})
}

// Pressed returns true if k went down at least once this frame.
func (f InputFrame) Pressed(k Key) bool {
	for _, e := range f.Events {
		if e.Kind == KeyDown && e.Key == k {
			return true
		}
	}
	return false
}

// AnyPressed returns true if any key went down this frame.
func (f InputFrame) AnyPressed() bool {
	for _, e := range f.Events {
		if e.Kind == KeyDown && e.Key != KeyNone {
			return true
		}
	}
	return false
}

// Empty reports whether no events were recorded.
func (f InputFrame) Empty() bool {
	return len(f.Events) == 0
}

// Clear resets the frame for the next tick, keeping its storage.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	if f.Events == nil {
		return InputFrame{}
	}
	clone := InputFrame{Events: make([]KeyEvent, len(f.Events))}
	copy(clone.Events, f.Events)
	return clone
}
