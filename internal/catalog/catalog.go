// Package catalog holds the static registry of tools, weapons, minerals and enemies.
package catalog

import (
	"github.com/osse101/PrintMiner_Go/internal/domain"
	"github.com/osse101/PrintMiner_Go/internal/utils"
)

// Catalog is an immutable set of entity templates. Tools and weapons are kept
// in tier order; the first entry of each is the default equipment.
type Catalog struct {
	Version  string           `json:"version"`
	Tools    []domain.Tool    `json:"tools" validate:"required,min=1,dive"`
	Weapons  []domain.Weapon  `json:"weapons" validate:"required,min=1,dive"`
	Minerals []domain.Mineral `json:"minerals" validate:"required,min=1,dive"`
	Enemies  []domain.Enemy   `json:"enemies" validate:"required,min=1,dive"`
}

// Default returns the built-in catalog
func Default() *Catalog {
	return &Catalog{
		Version: CatalogVersion,
		Tools: []domain.Tool{
			{Item: domain.Item{Name: domain.ToolPickaxe, Price: 0}, MiningPower: 1},
			{Item: domain.Item{Name: domain.ToolPickaxeII, Price: 0}, MiningPower: 2},
			{Item: domain.Item{Name: domain.ToolUltraPick, Price: 0}, MiningPower: 3},
		},
		Weapons: []domain.Weapon{
			{Item: domain.Item{Name: domain.WeaponHammer, Price: 0}, Damage: 20},
			{Item: domain.Item{Name: domain.WeaponHammerII, Price: 0}, Damage: 30},
			{Item: domain.Item{Name: domain.WeaponUltraHam, Price: 0}, Damage: 50},
		},
		Minerals: []domain.Mineral{
			{Key: domain.MineralRock, Name: "rock", Size: 5, Gold: 5, Experience: 10},
			{Key: domain.MineralStone, Name: "stone", Size: 10, Gold: 10, Experience: 20},
			{Key: domain.MineralGold, Name: "gold", Size: 20, Gold: 50, Experience: 50},
			{Key: domain.MineralAlbamorium, Name: "albamorium", Size: 35, Gold: 10, Experience: 20},
			{Key: domain.MineralIgsite, Name: "igsite", Size: 10, Gold: 10, Experience: 1},
		},
		Enemies: []domain.Enemy{
			{Key: domain.EnemyBug, Name: "Bug", MaxHealth: 40, Damage: 5, GoldCredits: 5},
			{Key: domain.EnemyBigBug, Name: "Big Bug", MaxHealth: 80, Damage: 20, GoldCredits: 10},
			{Key: domain.EnemyRockadillo, Name: "Rockadillo", MaxHealth: 100, Damage: 30, GoldCredits: 20},
			{Key: domain.EnemyCadosaurus, Name: "Cadosaurus", MaxHealth: 90, Damage: 10, GoldCredits: 90},
		},
	}
}

// AllTools returns every tool tier in order
func (c *Catalog) AllTools() []domain.Tool {
	return append([]domain.Tool(nil), c.Tools...)
}

// AllWeapons returns every weapon tier in order
func (c *Catalog) AllWeapons() []domain.Weapon {
	return append([]domain.Weapon(nil), c.Weapons...)
}

// AllMinerals returns every mineral template
func (c *Catalog) AllMinerals() []domain.Mineral {
	return append([]domain.Mineral(nil), c.Minerals...)
}

// AllEnemies returns every enemy template
func (c *Catalog) AllEnemies() []domain.Enemy {
	return append([]domain.Enemy(nil), c.Enemies...)
}

// BaseTool is the tier-0 tool every new miner starts with
func (c *Catalog) BaseTool() domain.Tool {
	return c.Tools[0]
}

// BaseWeapon is the tier-0 weapon every new miner starts with
func (c *Catalog) BaseWeapon() domain.Weapon {
	return c.Weapons[0]
}

// UpgradeTools returns the non-default tool tiers, in the order the shop sells them
func (c *Catalog) UpgradeTools() []domain.Tool {
	return append([]domain.Tool(nil), c.Tools[1:]...)
}

// UpgradeWeapons returns the non-default weapon tiers, in the order the shop sells them
func (c *Catalog) UpgradeWeapons() []domain.Weapon {
	return append([]domain.Weapon(nil), c.Weapons[1:]...)
}

// RandomMineral picks a mineral template uniformly at random
func (c *Catalog) RandomMineral(r utils.Roller) domain.Mineral {
	return c.Minerals[r.Intn(len(c.Minerals))]
}

// RandomEnemy picks an enemy template uniformly at random
func (c *Catalog) RandomEnemy(r utils.Roller) domain.Enemy {
	return c.Enemies[r.Intn(len(c.Enemies))]
}

// Mineral looks up a mineral template by key
func (c *Catalog) Mineral(key string) (domain.Mineral, bool) {
	for _, m := range c.Minerals {
		if m.Key == key {
			return m, true
		}
	}
	return domain.Mineral{}, false
}

// Enemy looks up an enemy template by key
func (c *Catalog) Enemy(key string) (domain.Enemy, bool) {
	for _, e := range c.Enemies {
		if e.Key == key {
			return e, true
		}
	}
	return domain.Enemy{}, false
}
