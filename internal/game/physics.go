package game

import (
	"github.com/vovikan/tui-platformer/internal/core"
)

// Tuning holds the physics parameters for the simulation. All rates are in
// world units (tiles) and seconds. Passing tuning in rather than using free
// constants keeps the integrator deterministic under alternate values in tests.
type Tuning struct {
	Gravity      float64 // Downward acceleration, units/s²
	MoveAccel    float64 // Horizontal acceleration while grounded, units/s²
	AirAccel     float64 // Horizontal acceleration while airborne, units/s²
	Friction     float64 // Ground deceleration with no input, units/s²
	JumpVelocity float64 // Upward speed applied on jump, units/s
	MaxFall      float64 // Terminal fall speed, units/s
	Bounce       float64 // Fraction of speed retained after wall/ceiling impact
	Radius       float64 // Player body radius, must stay below 0.5 tiles
}

// DefaultTuning returns the stock physics parameters.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:      30.0,
		MoveAccel:    35.0,
		AirAccel:     15.0,
		Friction:     30.0,
		JumpVelocity: 11.0,
		MaxFall:      18.0,
		Bounce:       0.25,
		Radius:       0.35,
	}
}

// Intent is the per-tick movement input for the player body.
// Both Left and Right held cancel out to no horizontal bias.
type Intent struct {
	Left  bool
	Right bool
	Jump  bool
}

// Player is the circular player body. Position and velocity are in world
// units; y grows downward, so falling is positive velocity.
type Player struct {
	Pos      core.Vec2
	Vel      core.Vec2
	OnGround bool
}

// respawnAt places the body at the center of a spawn cell with zero motion.
func (p *Player) respawnAt(l *Level) {
	p.Pos = core.V(float64(l.SpawnX)+0.5, float64(l.SpawnY)+0.5)
	p.Vel = core.Vec2{}
	p.OnGround = false
}

// integrate advances the body's velocity for one tick of elapsed time dt.
// Order matters: input acceleration, ground friction, gravity with terminal
// clamp, then jump. Jump only requires ground contact at evaluation time, so
// holding jump re-triggers every tick contact is regained.
func (p *Player) integrate(in Intent, dt float64, tn Tuning) {
	dir := 0.0
	if in.Left {
		dir -= 1
	}
	if in.Right {
		dir += 1
	}

	accel := tn.MoveAccel
	if !p.OnGround {
		accel = tn.AirAccel
	}
	p.Vel.X += dir * accel * dt

	// Friction decelerates toward zero without crossing it.
	if p.OnGround && dir == 0 {
		decel := tn.Friction * dt
		switch {
		case p.Vel.X > decel:
			p.Vel.X -= decel
		case p.Vel.X < -decel:
			p.Vel.X += decel
		default:
			p.Vel.X = 0
		}
	}

	p.Vel.Y += tn.Gravity * dt
	if p.Vel.Y > tn.MaxFall {
		p.Vel.Y = tn.MaxFall
	}

	if in.Jump && p.OnGround {
		p.Vel.Y = -tn.JumpVelocity
		p.OnGround = false
	}
}
