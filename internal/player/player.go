// Package player holds the mutable progression record of a miner.
package player

import (
	"github.com/osse101/PrintMiner_Go/internal/domain"
	"github.com/osse101/PrintMiner_Go/internal/progression"
)

// DefaultName is the display name of a fresh miner
const DefaultName = "[MINER]"

// Player is one miner's state for the lifetime of a game session.
// Health and GoldCredits never go negative; Tool and Weapon are always set.
//
// Aborted marks a cancelled mining run; Dead marks a lost fight. Both are
// cleared by Reset.
type Player struct {
	Name        string
	GoldCredits int
	Health      int
	MaxHealth   int
	Tool        domain.Tool
	Weapon      domain.Weapon
	GoldFound   int
	Experience  int
	Level       int
	Aborted     bool
	Dead        bool

	baseTool   domain.Tool
	baseWeapon domain.Weapon
}

// New creates a miner with default stats equipped with the given base gear
func New(baseTool domain.Tool, baseWeapon domain.Weapon) *Player {
	p := &Player{baseTool: baseTool, baseWeapon: baseWeapon}
	p.Reset()
	return p
}

// Reset restores every field to its creation default
func (p *Player) Reset() {
	p.Name = DefaultName
	p.GoldCredits = 0
	p.Health = progression.StartingMaxHealth
	p.MaxHealth = progression.StartingMaxHealth
	p.Tool = p.baseTool
	p.Weapon = p.baseWeapon
	p.GoldFound = 0
	p.Experience = 0
	p.Level = progression.StartingLevel
	p.Aborted = false
	p.Dead = false
}

// Heal restores health to the maximum
func (p *Player) Heal() {
	p.Health = p.MaxHealth
}

// LoseHealth removes health, clamped at zero
func (p *Player) LoseHealth(amount int) {
	if amount < 0 {
		return
	}
	if amount > p.Health {
		p.Health = 0
		return
	}
	p.Health -= amount
}

// LoseCredits removes credits, clamped at zero
func (p *Player) LoseCredits(amount int) {
	if amount < 0 {
		return
	}
	if amount > p.GoldCredits {
		p.GoldCredits = 0
		return
	}
	p.GoldCredits -= amount
}

// GainGold adds credits
func (p *Player) GainGold(amount int) {
	if amount > 0 {
		p.GoldCredits += amount
	}
}

// GainExperience adds experience
func (p *Player) GainExperience(amount int) {
	if amount > 0 {
		p.Experience += amount
	}
}

// EquipTool replaces the current tool. Ownership is not checked.
func (p *Player) EquipTool(t domain.Tool) {
	p.Tool = t
}

// EquipWeapon replaces the current weapon. Ownership is not checked.
func (p *Player) EquipWeapon(w domain.Weapon) {
	p.Weapon = w
}

// TryLevelUp levels the miner once if experience has reached the threshold.
// On success max health grows, health is refilled and experience restarts at 0.
func (p *Player) TryLevelUp() bool {
	if !progression.CanLevelUp(p.Level, p.Experience) {
		return false
	}

	next := progression.Next(p.Level, p.MaxHealth)
	p.Level = next.Level
	p.MaxHealth = next.MaxHealth
	p.Health = p.MaxHealth
	p.Experience = 0
	return true
}

// IsAlive reports whether the miner has health left
func (p *Player) IsAlive() bool {
	return p.Health > 0
}

// Snapshot is a read-only copy of the miner's stats
type Snapshot struct {
	Name        string `json:"name"`
	GoldCredits int    `json:"gold_credits"`
	Health      int    `json:"health"`
	MaxHealth   int    `json:"max_health"`
	ToolName    string `json:"tool_name"`
	MiningPower int    `json:"mining_power"`
	WeaponName  string `json:"weapon_name"`
	Damage      int    `json:"damage"`
	GoldFound   int    `json:"gold_found"`
	Experience  int    `json:"experience"`
	Level       int    `json:"level"`
	NextLevelAt int    `json:"next_level_at"`
	Aborted     bool   `json:"aborted"`
	Dead        bool   `json:"dead"`
}

// Snapshot copies the current stats
func (p *Player) Snapshot() Snapshot {
	return Snapshot{
		Name:        p.Name,
		GoldCredits: p.GoldCredits,
		Health:      p.Health,
		MaxHealth:   p.MaxHealth,
		ToolName:    p.Tool.Name,
		MiningPower: p.Tool.MiningPower,
		WeaponName:  p.Weapon.Name,
		Damage:      p.Weapon.Damage,
		GoldFound:   p.GoldFound,
		Experience:  p.Experience,
		Level:       p.Level,
		NextLevelAt: progression.ExperienceToLevel(p.Level),
		Aborted:     p.Aborted,
		Dead:        p.Dead,
	}
}
