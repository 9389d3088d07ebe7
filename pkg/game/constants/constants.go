package constants

const (
	// CanvasWidth is the width of the logical playfield
	CanvasWidth float64 = 400.0
	// CanvasHeight is the height of the logical playfield
	CanvasHeight float64 = 600.0
	// GrassWidth is the width of the grass margin on each side of the road
	GrassWidth float64 = 40.0

	// Player Width
	PlayerWidth float64 = 50.0
	// Player Height
	PlayerHeight float64 = 90.0
	// PlayerStartingX is the center lane
	PlayerStartingX float64 = 175.0
	// PlayerY is fixed for the whole session
	PlayerY float64 = 480.0
	// PlayerLaneStep is how far a single tap shifts the player
	PlayerLaneStep float64 = 80.0
	// PlayerMinX is the leftmost player lane
	PlayerMinX float64 = 60.0
	// PlayerMaxX is the rightmost player lane
	PlayerMaxX float64 = 260.0
	// PlayerCornerRadius of the car body
	PlayerCornerRadius float64 = 10.0

	// Enemy Width
	EnemyWidth float64 = 50.0
	// Enemy Height
	EnemyHeight float64 = 80.0
	// EnemySpawnY is above the top edge so enemies drive in
	EnemySpawnY float64 = -100.0
	// EnemySpawnChance is the per tick probability of spawning an enemy
	EnemySpawnChance float64 = 0.02
	// EnemyCornerRadius of the car body
	EnemyCornerRadius float64 = 8.0

	// CoinRadius
	CoinRadius float64 = 12.0
	// CoinSpawnY is above the top edge
	CoinSpawnY float64 = -50.0
	// CoinSpawnChance is the per tick probability of spawning a coin
	CoinSpawnChance float64 = 0.015
	// CoinSpawnMinX is the leftmost coin spawn x
	CoinSpawnMinX float64 = 60.0
	// CoinSpawnRangeX is the width of the coin spawn band, [CoinSpawnMinX, CoinSpawnMinX+CoinSpawnRangeX)
	CoinSpawnRangeX float64 = 280.0
	// CoinPickupDistance is the max center distance (exclusive) for a pickup
	CoinPickupDistance float64 = 35.0
	// CoinScore is added to the score per coin
	CoinScore int = 10
	// CoinSpeedBonus is added to the speed per coin
	CoinSpeedBonus float64 = 0.1

	// StartingSpeed in units per tick
	StartingSpeed float64 = 5.0

	// RoadLineWrap is where the road line offset wraps back to zero
	RoadLineWrap float64 = 40.0
	// RoadLineDash is the dash and gap length of the centerline
	RoadLineDash float64 = 20.0
	// RoadLineWidth of the centerline
	RoadLineWidth float64 = 4.0
)

// EnemyLanes are the x positions enemies spawn at.
var EnemyLanes = [...]float64{60, 140, 220, 300}
