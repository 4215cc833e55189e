package escape

import (
	"testing"

	"github.com/vovakirdan/escape-arcade/internal/config"
	"github.com/vovakirdan/escape-arcade/internal/core"
)

func hasTone(res core.StepResult, want core.Tone) bool {
	for _, t := range res.Tones {
		if t == want {
			return true
		}
	}
	return false
}

// addBug places a bug over the player's spawn point.
func addBug(w *World) {
	lv := w.Level()
	lv.Enemies = append(lv.Enemies, newEnemy(EnemySpec{Kind: KindBug, X: 100, Y: 510}, lv.tune))
}

// atExit moves the player into the exit zone, standing on the floor.
func atExit(w *World) {
	w.Player.X, w.Player.Y = 690, 510
	w.Player.VX, w.Player.VY = 0, 0
}

func TestStartScreenWaitsForKeyDown(t *testing.T) {
	w := NewWorld(AIEscape, config.DefaultEscapeConfig(), LevelSet{Levels: []LevelSpec{groundOnly("a")}}, 1)

	w.Step(release(core.KeyLeft))
	w.Step(press(core.KeyNone))
	if w.Phase != core.PhaseStart {
		t.Fatalf("phase = %s, expected start", w.Phase)
	}
	if w.Player.Y != 500 {
		t.Errorf("player moved to y=%v on the start screen", w.Player.Y)
	}

	res := w.Step(press(core.KeyRight))
	if w.Phase != core.PhasePlaying {
		t.Fatalf("phase = %s, expected playing", w.Phase)
	}
	if !res.Has(core.EventStarted) {
		t.Error("expected started event")
	}
	if w.Player.VX != 0 {
		t.Errorf("the starting key should not move the player, vx=%v", w.Player.VX)
	}
}

func TestMovementKeys(t *testing.T) {
	w := newTestWorld(AIEscape)
	cfg := w.Config()

	w.Step(press(core.KeyRight))
	if w.Player.VX != cfg.Player.WalkSpeed {
		t.Errorf("vx = %v, expected %v", w.Player.VX, cfg.Player.WalkSpeed)
	}
	w.Step(release(core.KeyUp))
	if w.Player.VX != cfg.Player.WalkSpeed {
		t.Error("releasing up should not stop horizontal movement")
	}
	w.Step(release(core.KeyRight))
	if w.Player.VX != 0 {
		t.Errorf("vx = %v after release", w.Player.VX)
	}
	w.Step(press(core.KeyLeft))
	if w.Player.VX != -cfg.Player.WalkSpeed {
		t.Errorf("vx = %v, expected %v", w.Player.VX, -cfg.Player.WalkSpeed)
	}
}

func TestJumpFromGround(t *testing.T) {
	w := newTestWorld(AIEscape)
	for i := 0; i < 30 && !w.Player.OnGround; i++ {
		w.Step(idle())
	}
	if !w.Player.OnGround || w.Player.Y != 510 {
		t.Fatalf("player should settle on the floor, y=%v onGround=%v", w.Player.Y, w.Player.OnGround)
	}

	res := w.Step(press(core.KeyUp))
	if !res.Has(core.EventJump) || !hasTone(res, toneJump) {
		t.Error("expected jump event and tone")
	}
	if w.Player.VY >= 0 {
		t.Errorf("vy = %v, expected upward motion", w.Player.VY)
	}

	res = w.Step(press(core.KeyUp))
	if res.Has(core.EventJump) {
		t.Error("mid-air jump should be refused")
	}
}

func TestEnemyContactOnLastLifeEndsRun(t *testing.T) {
	w := newTestWorld(AIEscape)
	w.Player.Lives = 1
	addBug(w)

	res := w.Step(idle())
	if w.Phase != core.PhaseGameOver {
		t.Fatalf("phase = %s, expected gameover on the same step", w.Phase)
	}
	if w.Player.Lives != 0 {
		t.Errorf("lives = %d, expected 0", w.Player.Lives)
	}
	if !res.Has(core.EventLifeLost) || !res.Has(core.EventGameOver) || !hasTone(res, toneHit) {
		t.Errorf("missing events or hit tone: %+v", res.Events)
	}
	if !res.State.GameOver {
		t.Error("state should report game over")
	}

	before := w.Snapshot()
	w.Step(idle())
	w.Step(idle())
	after := w.Snapshot()
	if before.PlayerX != after.PlayerX || before.PlayerY != after.PlayerY {
		t.Error("player moved after game over")
	}
	for i := range before.EnemyData {
		if before.EnemyData[i] != after.EnemyData[i] {
			t.Error("enemies moved after game over")
		}
	}
}

func TestEnemyContactCostsLife(t *testing.T) {
	tests := []struct {
		rules       Rules
		wantEnemies int
	}{
		{AIEscape, 1},
		{TVEscape, 0},
	}

	for _, tc := range tests {
		t.Run(tc.rules.ID, func(t *testing.T) {
			w := newTestWorld(tc.rules)
			addBug(w)

			w.Step(idle())
			if w.Phase != core.PhasePlaying {
				t.Fatalf("phase = %s", w.Phase)
			}
			if w.Player.Lives != 2 {
				t.Errorf("lives = %d, expected 2", w.Player.Lives)
			}
			if w.Player.X != 100 || w.Player.Y != 500 {
				t.Errorf("player at (%v, %v), expected respawn", w.Player.X, w.Player.Y)
			}
			if n := len(w.Level().Enemies); n != tc.wantEnemies {
				t.Errorf("enemies = %d, expected %d", n, tc.wantEnemies)
			}
		})
	}
}

func TestOnlyFirstEnemyHitCounts(t *testing.T) {
	w := newTestWorld(AIEscape)
	addBug(w)
	addBug(w)

	w.Step(idle())
	if w.Player.Lives != 2 {
		t.Errorf("lives = %d, expected one life lost", w.Player.Lives)
	}
}

func TestShieldAbsorbsHit(t *testing.T) {
	w := newTestWorld(AIEscape)
	w.Player.Shield.arm(w.Config().PowerUps.ShieldFrames)
	addBug(w)

	res := w.Step(idle())
	p := w.Player
	if p.Shield.Active || p.Shield.Frames != 0 {
		t.Errorf("shield = %+v, expected inactive with 0 frames", p.Shield)
	}
	if p.VY >= 0 {
		t.Errorf("vy = %v, expected bounce", p.VY)
	}
	if p.Lives != 3 {
		t.Errorf("lives = %d, expected unchanged", p.Lives)
	}
	if !res.Has(core.EventShieldBreak) || !hasTone(res, toneShieldBreak) {
		t.Error("expected shield break event and tone")
	}
	if res.Has(core.EventLifeLost) {
		t.Error("shielded hit must not cost a life")
	}
}

func TestProjectiles(t *testing.T) {
	t.Run("offscreen is removed", func(t *testing.T) {
		w := newTestWorld(AIEscape)
		lv := w.Level()
		lv.Projectiles = append(lv.Projectiles, newProjectile(801, 100, 0, 0), newProjectile(3, 100, -5, 0))

		w.Step(idle())
		if n := len(lv.Projectiles); n != 0 {
			t.Errorf("projectiles = %d, expected 0", n)
		}
		if w.Player.Lives != 3 || w.Score != 0 {
			t.Errorf("lives=%d score=%d, expected no side effects", w.Player.Lives, w.Score)
		}
	})

	t.Run("hit costs a life", func(t *testing.T) {
		w := newTestWorld(AIEscape)
		lv := w.Level()
		lv.Projectiles = append(lv.Projectiles, newProjectile(100, 520, -5, 0))

		res := w.Step(idle())
		if len(lv.Projectiles) != 0 {
			t.Error("projectile should be consumed by the hit")
		}
		if w.Player.Lives != 2 || !hasTone(res, toneHit) {
			t.Errorf("lives = %d, expected 2 with a hit tone", w.Player.Lives)
		}
	})

	t.Run("moves in flight", func(t *testing.T) {
		w := newTestWorld(AIEscape)
		lv := w.Level()
		lv.Projectiles = append(lv.Projectiles, newProjectile(400, 100, -5, 0))

		w.Step(idle())
		if len(lv.Projectiles) != 1 || lv.Projectiles[0].X != 395 {
			t.Errorf("projectiles = %+v, expected one at x=395", lv.Projectiles)
		}
	})
}

func TestCollectiblesScoreOnce(t *testing.T) {
	spec := groundOnly("a")
	spec.DataPoints = []PointSpec{{X: 110, Y: 510}}
	spec.PowerUps = []PowerUpSpec{{Kind: PowerSpeed, X: 100, Y: 510}}
	w := newTestWorld(AIEscape, spec)

	res := w.Step(idle())
	if w.Score != 35 {
		t.Fatalf("score = %d, expected 10 + 25", w.Score)
	}
	if !res.Has(core.EventCollect) || !res.Has(core.EventPowerUp) {
		t.Error("expected collect and power_up events")
	}
	if !w.Player.Boost.Active || w.Player.Boost.Frames != 300 {
		t.Errorf("boost = %+v", w.Player.Boost)
	}

	w.Step(idle())
	if w.Score != 35 {
		t.Errorf("score = %d after second contact, expected 35", w.Score)
	}
	if w.Player.Boost.Frames != 299 {
		t.Errorf("boost frames = %d, a collected power-up must not re-arm", w.Player.Boost.Frames)
	}
	if w.Level().Remaining() != 0 {
		t.Error("data point should be collected")
	}
}

func TestFallingOffScreen(t *testing.T) {
	w := newTestWorld(AIEscape)
	w.Player.Y = 601

	res := w.Step(idle())
	if w.Player.Lives != 2 {
		t.Errorf("lives = %d, expected 2", w.Player.Lives)
	}
	if w.Player.Y != 500 {
		t.Errorf("y = %v, expected respawn", w.Player.Y)
	}
	if hasTone(res, toneHit) {
		t.Error("falling off screen plays no hit tone")
	}

	w.Player.Lives = 1
	w.Player.Y = 601
	w.Step(idle())
	if w.Phase != core.PhaseGameOver {
		t.Errorf("phase = %s, expected gameover", w.Phase)
	}
}

func TestLevelProgression(t *testing.T) {
	tests := []struct {
		rules     Rules
		wantPhase core.Phase
		wantEvent core.EventKind
	}{
		{AIEscape, core.PhaseWin, core.EventWin},
		{TVEscape, core.PhaseGameOver, core.EventGameOver},
	}

	for _, tc := range tests {
		t.Run(tc.rules.ID, func(t *testing.T) {
			w := newTestWorld(tc.rules, groundOnly("first"), groundOnly("second"))
			w.Score = 50

			atExit(w)
			res := w.Step(idle())
			if w.CurrentLevel() != 1 || w.Level().Name != "second" {
				t.Fatalf("level = %d (%s), expected 1", w.CurrentLevel(), w.Level().Name)
			}
			if !res.Has(core.EventLevelUp) || !hasTone(res, toneLevelUp) {
				t.Error("expected level_up event and tone")
			}
			if w.Player.X != 100 || w.Player.Y != 500 || w.Player.Lives != 3 {
				t.Errorf("player = %+v, expected respawn with lives kept", w.Player)
			}

			atExit(w)
			res = w.Step(idle())
			if w.Phase != tc.wantPhase {
				t.Fatalf("phase = %s, expected %s", w.Phase, tc.wantPhase)
			}
			if w.CurrentLevel() != 1 {
				t.Errorf("current level = %d, must not advance past the last", w.CurrentLevel())
			}
			if !w.Cleared || !res.State.Won || !res.State.GameOver {
				t.Errorf("cleared=%v state=%+v", w.Cleared, res.State)
			}
			if !res.Has(tc.wantEvent) {
				t.Errorf("expected %s event", tc.wantEvent)
			}
			if w.HighScore != 50 || !w.NewHigh {
				t.Errorf("high score = %d new=%v", w.HighScore, w.NewHigh)
			}
		})
	}
}

func TestLevelReloadRestoresCollectibles(t *testing.T) {
	spec := groundOnly("a")
	spec.DataPoints = []PointSpec{{X: 110, Y: 510}}
	w := newTestWorld(AIEscape, spec, spec)

	w.Step(idle())
	if w.Level().Remaining() != 0 {
		t.Fatal("data point should be collected")
	}
	atExit(w)
	w.Step(idle())
	if w.CurrentLevel() != 1 {
		t.Fatal("expected advance")
	}
	// Player respawned on top of the second level's copy; it is collected on the next frame.
	if w.Level().Remaining() != 1 {
		t.Errorf("remaining = %d, a fresh level should have its data point", w.Level().Remaining())
	}
}

func TestRestartKeepsHighScore(t *testing.T) {
	w := newTestWorld(AIEscape)
	w.Score = 40
	w.Player.Lives = 1
	addBug(w)
	w.Step(idle())
	if w.Phase != core.PhaseGameOver || w.HighScore != 40 {
		t.Fatalf("phase=%s high=%d", w.Phase, w.HighScore)
	}

	w.Step(release(core.KeyLeft))
	if w.Phase != core.PhaseGameOver {
		t.Fatal("key-up should not restart")
	}

	frame := w.Frame
	res := w.Step(press(core.KeyOther))
	if w.Phase != core.PhasePlaying || !res.Has(core.EventRestart) {
		t.Fatalf("phase = %s, expected restart into playing", w.Phase)
	}
	if w.Score != 0 || w.Player.Lives != 3 || w.CurrentLevel() != 0 {
		t.Errorf("score=%d lives=%d level=%d, expected a fresh run", w.Score, w.Player.Lives, w.CurrentLevel())
	}
	if w.HighScore != 40 {
		t.Errorf("high score = %d, expected 40", w.HighScore)
	}
	if w.Frame != frame+1 {
		t.Errorf("frame = %d, expected the counter to keep running", w.Frame)
	}
	if len(w.Level().Enemies) != 0 {
		t.Error("restart should rebuild the level from its data")
	}
}

func TestMelody(t *testing.T) {
	w := NewWorld(AIEscape, config.DefaultEscapeConfig(), MustEmbeddedLevels(AIEscape.ID), 1)
	every := w.Config().Audio.MelodyEvery

	for i := 1; i < every; i++ {
		res := w.Step(idle())
		if len(res.Tones) != 0 {
			t.Fatalf("frame %d: unexpected tones %+v", w.Frame, res.Tones)
		}
	}

	res := w.Step(idle())
	if len(res.Tones) != 1 {
		t.Fatalf("frame %d: tones = %+v, expected one melody note", w.Frame, res.Tones)
	}
	want := core.MidiToFreq(w.Level().Melody[1])
	if got := res.Tones[0]; got.Wave != core.WaveSine || got.Freq != want {
		t.Errorf("note = %+v, expected sine at %v", got, want)
	}
}

func TestWalkingRightClearsTrainingGround(t *testing.T) {
	w := NewWorld(AIEscape, config.DefaultEscapeConfig(), MustEmbeddedLevels(AIEscape.ID), 1)
	w.Step(press(core.KeyRight))
	w.Step(press(core.KeyRight))

	for i := 0; i < 200 && w.CurrentLevel() == 0; i++ {
		w.Step(idle())
	}
	if w.CurrentLevel() != 1 {
		t.Fatalf("still on level %d after walking right", w.CurrentLevel())
	}
	if w.Player.Lives != 3 {
		t.Errorf("lives = %d, the floor route is safe", w.Player.Lives)
	}
}

func TestStepIsDeterministic(t *testing.T) {
	script := func(frame int) core.InputFrame {
		switch {
		case frame == 1:
			return press(core.KeyOther)
		case frame == 5:
			return press(core.KeyRight)
		case frame%45 == 0:
			return press(core.KeyUp)
		case frame == 140:
			return release(core.KeyRight)
		case frame == 150:
			return press(core.KeyLeft)
		}
		return idle()
	}

	for _, rules := range []Rules{AIEscape, TVEscape} {
		t.Run(rules.ID, func(t *testing.T) {
			a := NewWorld(rules, config.DefaultEscapeConfig(), MustEmbeddedLevels(rules.ID), 7)
			b := NewWorld(rules, config.DefaultEscapeConfig(), MustEmbeddedLevels(rules.ID), 7)

			for f := 1; f <= 600; f++ {
				a.Step(script(f))
				b.Step(script(f))
				sa, sb := a.Snapshot(), b.Snapshot()
				if sa.Hash() != sb.Hash() {
					t.Fatalf("frame %d: snapshots diverged\n%+v\n%+v", f, sa, sb)
				}
			}
		})
	}
}

func TestStepResultIsDetached(t *testing.T) {
	w := newTestWorld(AIEscape)
	addBug(w)
	res := w.Step(idle())
	if len(res.Events) == 0 {
		t.Fatal("expected events")
	}
	first := res.Events[0]

	w.Step(idle())
	if res.Events[0] != first {
		t.Error("a later step must not rewrite an earlier result")
	}
}
