package escape

import "math"

// Snapshot is a flat summary of a session for replay checks and the sim tool.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Game        string  `yaml:"game"`
	Frame       int     `yaml:"frame"`
	Phase       string  `yaml:"phase"`
	Level       int     `yaml:"level"`
	LevelName   string  `yaml:"level_name"`
	Score       int     `yaml:"score"`
	HighScore   int     `yaml:"high_score"`
	Lives       int     `yaml:"lives"`
	Cleared     bool    `yaml:"cleared"`
	PlayerX     float64 `yaml:"player_x"`
	PlayerY     float64 `yaml:"player_y"`
	PlayerVX    float64 `yaml:"player_vx"`
	PlayerVY    float64 `yaml:"player_vy"`
	OnGround    bool    `yaml:"on_ground"`
	Shield      int     `yaml:"shield_frames"`
	Boost       int     `yaml:"speed_frames"`
	SuperJump   int     `yaml:"jump_frames"`
	Enemies     int     `yaml:"enemies"`
	Projectiles int     `yaml:"projectiles"`
	DataLeft    int     `yaml:"data_points_left"`
	PowerUpLeft int     `yaml:"power_ups_left"`

	// Enemy positions (each enemy is 2 values: X, Y)
	EnemyData []float64 `yaml:"-"`
}

// Snapshot returns the current session state as a Snapshot.
func (w *World) Snapshot() Snapshot {
	lv := w.Level()
	p := w.Player

	enemyData := make([]float64, 0, len(lv.Enemies)*2)
	for _, e := range lv.Enemies {
		enemyData = append(enemyData, e.X, e.Y)
	}

	powerUps := 0
	for i := range lv.PowerUps {
		if !lv.PowerUps[i].Collected {
			powerUps++
		}
	}

	return Snapshot{
		Game:        w.rules.ID,
		Frame:       w.Frame,
		Phase:       w.Phase.String(),
		Level:       w.current,
		LevelName:   lv.Name,
		Score:       w.Score,
		HighScore:   w.HighScore,
		Lives:       p.Lives,
		Cleared:     w.Cleared,
		PlayerX:     p.X,
		PlayerY:     p.Y,
		PlayerVX:    p.VX,
		PlayerVY:    p.VY,
		OnGround:    p.OnGround,
		Shield:      activeFrames(p.Shield),
		Boost:       activeFrames(p.Boost),
		SuperJump:   activeFrames(p.SuperJump),
		Enemies:     len(lv.Enemies),
		Projectiles: len(lv.Projectiles),
		DataLeft:    lv.Remaining(),
		PowerUpLeft: powerUps,
		EnemyData:   enemyData,
	}
}

func activeFrames(e Effect) int {
	if !e.Active {
		return 0
	}
	return e.Frames
}

// Snapshot returns the session state of the running game.
func (g *Game) Snapshot() Snapshot {
	return g.world.Snapshot()
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Frame)             //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Shield)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Boost)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SuperJump)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Projectiles) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DataLeft)    //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + math.Float64bits(snap.PlayerVX)
	h = h*31 + math.Float64bits(snap.PlayerVY)

	for _, v := range snap.EnemyData {
		h = h*31 + math.Float64bits(v)
	}

	for _, c := range snap.Phase {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}

	return h
}
