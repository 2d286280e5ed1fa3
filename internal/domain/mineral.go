package domain

// Mineral is a catalog template. Mining sessions roll effective values
// below these maxima; the template itself is never mutated.
type Mineral struct {
	Key        string `json:"key" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Size       int    `json:"size" validate:"min=0"`
	Gold       int    `json:"gold" validate:"min=0"`
	Experience int    `json:"experience" validate:"min=0"`
}

// Enemy is a catalog template for an encounter.
type Enemy struct {
	Key         string `json:"key" validate:"required"`
	Name        string `json:"name" validate:"required"`
	MaxHealth   int    `json:"max_health" validate:"min=1"`
	Damage      int    `json:"damage" validate:"min=0"`
	GoldCredits int    `json:"gold_credits" validate:"min=0"`
}

// Mineral keys
const (
	MineralRock       = "rock"
	MineralStone      = "stone"
	MineralGold       = "gold"
	MineralAlbamorium = "albamorium"
	MineralIgsite     = "igsite"
)

// Enemy keys
const (
	EnemyBug        = "bug"
	EnemyBigBug     = "big_bug"
	EnemyRockadillo = "rockadillo"
	EnemyCadosaurus = "cadosaurus"
)
