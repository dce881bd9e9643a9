package game

// Run defaults.
const (
	MaxFloors = 8
	FOVRadius = 8
	MapWidth  = 48
	MapHeight = 32
)

// Hazard damage.
const (
	acidDivisor = 15
	lavaDivisor = 10
	trapDamage  = 4
)

// Enemy special actions.
const (
	maxSummons   = 3
	enrageAttack = 2
	memSummons   = "summons"
	memEnraged   = "enraged"
)
