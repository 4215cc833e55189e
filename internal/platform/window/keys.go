package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/escape-arcade/internal/core"
)

// gameKey maps a physical key to the logical key the games understand.
func gameKey(k ebiten.Key) core.Key {
	switch k {
	case ebiten.KeyArrowLeft, ebiten.KeyA:
		return core.KeyLeft
	case ebiten.KeyArrowRight, ebiten.KeyD:
		return core.KeyRight
	case ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace:
		return core.KeyUp
	}
	return core.KeyOther
}

// hostAction is a key the window handles itself.
type hostAction int

const (
	hostNone hostAction = iota
	hostPause
	hostQuit
)

func hostKey(k ebiten.Key) hostAction {
	switch k {
	case ebiten.KeyP:
		return hostPause
	case ebiten.KeyEscape, ebiten.KeyQ:
		return hostQuit
	}
	return hostNone
}

// keyState turns physical key transitions into logical ones. A logical key
// stays down while any of its physical keys is held, so releasing A while
// the left arrow is still down does not release Left.
type keyState struct {
	held map[core.Key]int
}

func newKeyState() *keyState {
	return &keyState{held: make(map[core.Key]int)}
}

func (s *keyState) down(k ebiten.Key, f *core.InputFrame) {
	gk := gameKey(k)
	s.held[gk]++
	if s.held[gk] == 1 {
		f.Press(gk)
	}
}

func (s *keyState) up(k ebiten.Key, f *core.InputFrame) {
	gk := gameKey(k)
	if s.held[gk] == 0 {
		return
	}
	s.held[gk]--
	if s.held[gk] == 0 {
		delete(s.held, gk)
		f.Release(gk)
	}
}

// releaseAll drops every held key.
func (s *keyState) releaseAll(f *core.InputFrame) {
	for _, k := range []core.Key{core.KeyLeft, core.KeyRight, core.KeyUp, core.KeyOther} {
		if s.held[k] > 0 {
			delete(s.held, k)
			f.Release(k)
		}
	}
}
