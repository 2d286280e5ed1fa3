// Package shop sells health and gear upgrades to a single miner.
package shop

import (
	"slices"

	"github.com/osse101/PrintMiner_Go/internal/domain"
	"github.com/osse101/PrintMiner_Go/internal/player"
)

// HealCostPerPoint is the credit cost of one missing health point
const HealCostPerPoint = 10

// Purchase kinds
const (
	KindHeal   = "heal"
	KindTool   = "tool"
	KindWeapon = "weapon"
)

// Shop is a session-scoped inventory of upgrades. CurrentTool and
// CurrentWeapon are always the head of their sale sequence, or the
// out-of-stock sentinel once the sequence is empty.
type Shop struct {
	ToolsForSale   []domain.Tool
	WeaponsForSale []domain.Weapon
	CurrentTool    domain.Tool
	CurrentWeapon  domain.Weapon

	tools   []domain.Tool
	weapons []domain.Weapon
}

// New creates a shop stocked with the given upgrade tiers
func New(tools []domain.Tool, weapons []domain.Weapon) *Shop {
	s := &Shop{
		tools:   slices.Clone(tools),
		weapons: slices.Clone(weapons),
	}
	s.Reset()
	return s
}

// Reset restocks every upgrade
func (s *Shop) Reset() {
	s.ToolsForSale = slices.Clone(s.tools)
	s.WeaponsForSale = slices.Clone(s.weapons)
	s.advance()
}

// HealPrice is the cost of healing p to full health. Zero at full health.
func HealPrice(p *player.Player) int {
	return (p.MaxHealth - p.Health) * HealCostPerPoint
}

// PurchaseHeal heals p to full when they are hurt and can afford it
func (s *Shop) PurchaseHeal(p *player.Player) bool {
	price := HealPrice(p)
	if p.Health >= p.MaxHealth || p.GoldCredits < price {
		return false
	}

	p.LoseCredits(price)
	p.Heal()
	return true
}

// PurchaseTool sells the current tool to p and equips it
func (s *Shop) PurchaseTool(p *player.Player) bool {
	idx := slices.Index(s.ToolsForSale, s.CurrentTool)
	if idx < 0 || p.GoldCredits < s.CurrentTool.Price {
		return false
	}

	bought := s.CurrentTool
	p.LoseCredits(bought.Price)
	p.EquipTool(bought)
	s.ToolsForSale = slices.Delete(s.ToolsForSale, idx, idx+1)
	s.advance()
	return true
}

// PurchaseWeapon sells the current weapon to p and equips it
func (s *Shop) PurchaseWeapon(p *player.Player) bool {
	idx := slices.Index(s.WeaponsForSale, s.CurrentWeapon)
	if idx < 0 || p.GoldCredits < s.CurrentWeapon.Price {
		return false
	}

	bought := s.CurrentWeapon
	p.LoseCredits(bought.Price)
	p.EquipWeapon(bought)
	s.WeaponsForSale = slices.Delete(s.WeaponsForSale, idx, idx+1)
	s.advance()
	return true
}

// Purchase dispatches a purchase by kind
func (s *Shop) Purchase(kind string, p *player.Player) (bool, error) {
	switch kind {
	case KindHeal:
		return s.PurchaseHeal(p), nil
	case KindTool:
		return s.PurchaseTool(p), nil
	case KindWeapon:
		return s.PurchaseWeapon(p), nil
	default:
		return false, domain.ErrInvalidInput
	}
}

func (s *Shop) advance() {
	s.CurrentTool = domain.OutOfStockTool
	if len(s.ToolsForSale) > 0 {
		s.CurrentTool = s.ToolsForSale[0]
	}
	s.CurrentWeapon = domain.OutOfStockWeapon
	if len(s.WeaponsForSale) > 0 {
		s.CurrentWeapon = s.WeaponsForSale[0]
	}
}
