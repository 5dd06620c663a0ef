package game

// Snapshot is the read-only per-tick view of the simulation for presentation
// layers. Primitive types only for stable serialization.
type Snapshot struct {
	Tick       uint64
	X, Y       float64 // Player position, world units
	VX, VY     float64 // Player velocity, units/s
	OnGround   bool
	Lives      int
	LevelIndex int
	LevelCount int
	LevelID    string
	Score      int
	Paused     bool
	GameOver   bool

	// Seconds spent on the current level, across respawns.
	LevelSeconds float64
}

// Snapshot returns the current simulation state. Presentation readers must
// not feed anything back into the game beyond the input frame.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:         g.tickCount,
		X:            g.player.Pos.X,
		Y:            g.player.Pos.Y,
		VX:           g.player.Vel.X,
		VY:           g.player.Vel.Y,
		OnGround:     g.player.OnGround,
		Lives:        g.lives,
		LevelIndex:   g.levelIndex,
		Score:        g.score,
		Paused:       g.paused,
		GameOver:     g.gameOver,
		LevelSeconds: g.levelTime,
	}
	if g.source != nil {
		s.LevelCount = g.source.Count()
	}
	if g.level != nil {
		s.LevelID = g.level.ID
	}
	return s
}
