package escape

import (
	"slices"
	"testing"

	"github.com/vovakirdan/escape-arcade/internal/config"
	"github.com/vovakirdan/escape-arcade/internal/core"
)

func texts(dst *core.DrawList) []string {
	var out []string
	for _, c := range dst.Cmds() {
		if c.Shape == core.ShapeText {
			out = append(out, c.Text)
		}
	}
	return out
}

func TestDrawScreens(t *testing.T) {
	tests := []struct {
		name  string
		setup func(w *World)
		want  []string
	}{
		{
			name:  "start",
			setup: func(w *World) { w.Phase = core.PhaseStart },
			want:  []string{AIEscape.Text.Title, AIEscape.Text.Subtitle, AIEscape.Text.StartPrompt},
		},
		{
			name:  "playing",
			setup: func(w *World) {},
			want:  []string{"Lives: 3", "Score: 0", "Level: 1/1"},
		},
		{
			name: "game over",
			setup: func(w *World) {
				w.Score = 20
				w.finish(core.PhaseGameOver)
			},
			want: []string{AIEscape.Text.FailTitle, "Score: 20", "NEW HIGH SCORE!", AIEscape.Text.RestartPrompt},
		},
		{
			name: "win",
			setup: func(w *World) {
				w.HighScore = 90
				w.Score = 30
				w.Cleared = true
				w.finish(core.PhaseWin)
			},
			want: []string{AIEscape.Text.WinTitle, "Final Score: 30", "High Score: 90", AIEscape.Text.AgainPrompt},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(AIEscape)
			tc.setup(w)
			dst := core.NewDrawList(256)
			w.Draw(dst)

			got := texts(dst)
			for _, s := range tc.want {
				if !slices.Contains(got, s) {
					t.Errorf("missing text %q in %q", s, got)
				}
			}
			if cmds := dst.Cmds(); len(cmds) == 0 || cmds[0].Shape != core.ShapeBackground {
				t.Error("frame should start with a background")
			}
		})
	}
}

func TestDrawClearedWithoutWinPhase(t *testing.T) {
	w := newTestWorld(TVEscape)
	w.Cleared = true
	w.finish(core.PhaseGameOver)

	dst := core.NewDrawList(64)
	w.Draw(dst)
	got := texts(dst)
	if !slices.Contains(got, TVEscape.Text.WinTitle) {
		t.Errorf("cleared run should show %q, got %q", TVEscape.Text.WinTitle, got)
	}
	if slices.Contains(got, TVEscape.Text.FailTitle) {
		t.Error("cleared run should not show the failure title")
	}
}

func TestDrawSkipsCollected(t *testing.T) {
	spec := groundOnly("a")
	spec.DataPoints = []PointSpec{{X: 300, Y: 300}, {X: 400, Y: 300}}
	w := newTestWorld(AIEscape, spec)

	count := func() int {
		dst := core.NewDrawList(256)
		w.Draw(dst)
		n := 0
		for _, s := range texts(dst) {
			if s == "01" {
				n++
			}
		}
		return n
	}

	if n := count(); n != 2 {
		t.Fatalf("data point labels = %d, expected 2", n)
	}
	w.Level().DataPoints[0].Collected = true
	if n := count(); n != 1 {
		t.Errorf("data point labels = %d, expected 1", n)
	}
}

func TestDrawEffectTimers(t *testing.T) {
	w := newTestWorld(AIEscape)
	cfg := w.Config()
	w.Player.activate(PowerShield, cfg)
	w.Player.activate(PowerSpeed, cfg)
	w.Player.activate(PowerJump, cfg)

	dst := core.NewDrawList(256)
	w.Draw(dst)
	got := texts(dst)
	for _, s := range []string{"Shield: 10s", "Speed: 5s", "Jump+: 5s"} {
		if !slices.Contains(got, s) {
			t.Errorf("missing %q in %q", s, got)
		}
	}
}

func TestDrawIsPure(t *testing.T) {
	for _, phase := range []core.Phase{core.PhaseStart, core.PhasePlaying, core.PhaseGameOver, core.PhaseWin} {
		t.Run(phase.String(), func(t *testing.T) {
			w := NewWorld(AIEscape, config.DefaultEscapeConfig(), MustEmbeddedLevels(AIEscape.ID), 3)
			w.Phase = phase
			before := w.Snapshot()

			a, b := core.NewDrawList(512), core.NewDrawList(512)
			w.Draw(a)
			w.Draw(b)

			if !slices.EqualFunc(a.Cmds(), b.Cmds(), func(x, y core.DrawCmd) bool {
				return x.Shape == y.Shape && x.X == y.X && x.Y == y.Y && x.W == y.W && x.H == y.H && x.Text == y.Text
			}) {
				t.Error("drawing the same frame twice gave different commands")
			}
			after := w.Snapshot()
			if after.Hash() != before.Hash() {
				t.Error("Draw changed the session state")
			}
		})
	}
}

func TestDrawEveryTheme(t *testing.T) {
	for _, theme := range []Theme{ThemeTraining, ThemeNeural, ThemeRobotics, ThemeStatic, ThemeNews, ThemeCartoon} {
		spec := groundOnly(string(theme))
		spec.Theme = theme
		w := newTestWorld(AIEscape, spec)

		dst := core.NewDrawList(512)
		w.Draw(dst)
		if dst.Len() < 10 {
			t.Errorf("%s: only %d commands", theme, dst.Len())
		}
	}
}

func TestRasterizedFrame(t *testing.T) {
	w := NewWorld(AIEscape, config.DefaultEscapeConfig(), MustEmbeddedLevels(AIEscape.ID), 1)
	w.Phase = core.PhasePlaying

	dst := core.NewDrawList(512)
	w.Draw(dst)
	screen := core.NewScreen(80, 30)
	screen.Rasterize(dst, core.WorldW, core.WorldH)

	if screen.String() == "" {
		t.Fatal("empty raster")
	}
	// Floor is the bottom band of the world.
	if got := screen.GetCell(10, 29).Bg; got != core.ColorGreen {
		t.Errorf("floor cell bg = %v, expected green", got)
	}
}
