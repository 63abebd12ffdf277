package core

// ChunkSize is the edge length of one grid cell in world units.
const ChunkSize = 16.0

// Params holds the tuning constants of the simulation.
// All speeds are in world units per tick.
type Params struct {
	Speed        float64 // horizontal walking speed
	JumpImpulse  float64 // vertical velocity set by a jump (negative is up)
	Gravity      float64 // added to vertical velocity every tick
	MaxFallSpeed float64 // terminal vertical velocity
	JumpBuffer   int     // airborne ticks during which a jump is still allowed

	ActorW, ActorH float64

	DoorW, DoorH      float64
	DoorSpeed         float64 // raise/lower rate
	DoorOpenThreshold float64 // raise offset at which the door latches open
	DoorDetectMargin  float64 // detection zone padding around the door

	GateW, GateH   float64
	GateOpenOffset float64 // vertical snap applied when a gate opens
	PlateW, PlateH float64
}

// DefaultParams returns the reference tuning.
func DefaultParams() Params {
	return Params{
		Speed:        3.0,
		JumpImpulse:  -7.5,
		Gravity:      0.3,
		MaxFallSpeed: 8.0,
		JumpBuffer:   5,

		ActorW: 16,
		ActorH: 32,

		DoorW:             32,
		DoorH:             32,
		DoorSpeed:         1.5,
		DoorOpenThreshold: 31,
		DoorDetectMargin:  10,

		GateW:          32,
		GateH:          96,
		GateOpenOffset: 2 * ChunkSize,
		PlateW:         32,
		PlateH:         16,
	}
}
