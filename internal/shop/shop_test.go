package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PrintMiner_Go/internal/catalog"
	"github.com/osse101/PrintMiner_Go/internal/domain"
	"github.com/osse101/PrintMiner_Go/internal/player"
)

func setup() (*Shop, *player.Player) {
	cat := catalog.Default()
	return New(cat.UpgradeTools(), cat.UpgradeWeapons()), player.New(cat.BaseTool(), cat.BaseWeapon())
}

func TestNew_StocksUpgradeTiers(t *testing.T) {
	s, _ := setup()

	require.Len(t, s.ToolsForSale, 2)
	require.Len(t, s.WeaponsForSale, 2)
	assert.Equal(t, domain.ToolPickaxeII, s.CurrentTool.Name)
	assert.Equal(t, domain.WeaponHammerII, s.CurrentWeapon.Name)
}

func TestHealPrice(t *testing.T) {
	_, p := setup()
	assert.Equal(t, 0, HealPrice(p), "full health is free")

	last := 0
	for i := 1; i <= p.MaxHealth; i++ {
		p.LoseHealth(1)
		price := HealPrice(p)
		assert.Greater(t, price, last)
		assert.Equal(t, i*HealCostPerPoint, price)
		last = price
	}
}

func TestPurchaseHeal(t *testing.T) {
	t.Run("success deducts and heals", func(t *testing.T) {
		s, p := setup()
		p.GainGold(100)
		p.LoseHealth(4)

		require.True(t, s.PurchaseHeal(p))
		assert.Equal(t, 60, p.GoldCredits)
		assert.Equal(t, p.MaxHealth, p.Health)
	})

	t.Run("insufficient funds leaves player untouched", func(t *testing.T) {
		s, p := setup()
		p.GainGold(30)
		p.LoseHealth(4)
		before := *p

		assert.False(t, s.PurchaseHeal(p))
		assert.Equal(t, before, *p)
	})

	t.Run("full health is rejected", func(t *testing.T) {
		s, p := setup()
		p.GainGold(30)
		before := *p

		assert.False(t, s.PurchaseHeal(p))
		assert.Equal(t, before, *p)
	})
}

func TestPurchaseTool_RemovesAndEquips(t *testing.T) {
	s, p := setup()

	require.True(t, s.PurchaseTool(p))
	assert.Equal(t, domain.ToolPickaxeII, p.Tool.Name)
	assert.NotContains(t, s.ToolsForSale, p.Tool)
	assert.Equal(t, domain.ToolUltraPick, s.CurrentTool.Name)

	require.True(t, s.PurchaseTool(p))
	assert.Equal(t, domain.ToolUltraPick, p.Tool.Name)
	assert.NotContains(t, s.ToolsForSale, p.Tool)
	assert.Empty(t, s.ToolsForSale)
	assert.True(t, s.CurrentTool.IsOutOfStock())

	assert.False(t, s.PurchaseTool(p), "sentinel cannot be bought")
	assert.Equal(t, domain.ToolUltraPick, p.Tool.Name)
}

func TestPurchaseWeapon_RemovesAndEquips(t *testing.T) {
	s, p := setup()

	require.True(t, s.PurchaseWeapon(p))
	assert.Equal(t, domain.WeaponHammerII, p.Weapon.Name)
	assert.NotContains(t, s.WeaponsForSale, p.Weapon)

	require.True(t, s.PurchaseWeapon(p))
	assert.Equal(t, domain.WeaponUltraHam, p.Weapon.Name)
	assert.True(t, s.CurrentWeapon.IsOutOfStock())

	assert.False(t, s.PurchaseWeapon(p))
	assert.Equal(t, 50, p.Weapon.Damage)
}

func TestPurchaseTool_UnaffordableLeavesStateUntouched(t *testing.T) {
	tools := []domain.Tool{{Item: domain.Item{Name: "Drill", Price: 25}, MiningPower: 4}}
	weapons := []domain.Weapon{{Item: domain.Item{Name: "Axe", Price: 40}, Damage: 35}}
	s := New(tools, weapons)
	cat := catalog.Default()
	p := player.New(cat.BaseTool(), cat.BaseWeapon())
	p.GainGold(30)

	assert.False(t, s.PurchaseWeapon(p))
	assert.Equal(t, 30, p.GoldCredits)
	assert.Len(t, s.WeaponsForSale, 1)

	require.True(t, s.PurchaseTool(p))
	assert.Equal(t, 5, p.GoldCredits)
	assert.Equal(t, "Drill", p.Tool.Name)
}

func TestPurchase_Dispatch(t *testing.T) {
	s, p := setup()

	ok, err := s.Purchase(KindTool, p)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Purchase(KindHeal, p)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.Purchase("armor", p)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReset_Restocks(t *testing.T) {
	s, p := setup()
	s.PurchaseTool(p)
	s.PurchaseTool(p)
	s.PurchaseWeapon(p)

	s.Reset()

	fresh, _ := setup()
	assert.Equal(t, fresh.ToolsForSale, s.ToolsForSale)
	assert.Equal(t, fresh.WeaponsForSale, s.WeaponsForSale)
	assert.Equal(t, fresh.CurrentTool, s.CurrentTool)
	assert.Equal(t, fresh.CurrentWeapon, s.CurrentWeapon)
}

func TestPlayerReset_DoesNotRestockShop(t *testing.T) {
	s, p := setup()
	s.PurchaseTool(p)

	p.Reset()

	assert.Len(t, s.ToolsForSale, 1)
	assert.Equal(t, domain.ToolPickaxe, p.Tool.Name)
}
