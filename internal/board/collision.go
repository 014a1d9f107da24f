package board

// CollisionMasks is a point-in-time occupancy snapshot split by team.
// It is always rebuilt from a register rather than maintained
// incrementally, so it can never go stale relative to its source.
type CollisionMasks struct {
	Light Bitboard
	Dark  Bitboard
}

// NewCollisionMasks derives a fresh snapshot from the register.
func NewCollisionMasks(r *Register) CollisionMasks {
	return CollisionMasks{
		Light: r.Occupancy(Light),
		Dark:  r.Occupancy(Dark),
	}
}

// ByTeam returns one team's occupancy mask.
func (m CollisionMasks) ByTeam(t Team) Bitboard {
	if t == Light {
		return m.Light
	}
	return m.Dark
}

// All returns the combined occupancy of both teams.
func (m CollisionMasks) All() Bitboard {
	return m.Light | m.Dark
}
