package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PrintMiner_Go/internal/domain"
	"github.com/osse101/PrintMiner_Go/internal/utils"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestDefault_TierOrder(t *testing.T) {
	c := Default()

	tools := c.AllTools()
	require.Len(t, tools, 3)
	assert.Equal(t, domain.ToolPickaxe, tools[0].Name)
	assert.Equal(t, 1, tools[0].MiningPower)
	for i := 1; i < len(tools); i++ {
		assert.Greater(t, tools[i].MiningPower, tools[i-1].MiningPower)
	}

	weapons := c.AllWeapons()
	require.Len(t, weapons, 3)
	assert.Equal(t, domain.WeaponHammer, weapons[0].Name)
	for i := 1; i < len(weapons); i++ {
		assert.Greater(t, weapons[i].Damage, weapons[i-1].Damage)
	}

	assert.Equal(t, tools[0], c.BaseTool())
	assert.Equal(t, weapons[0], c.BaseWeapon())
	assert.Equal(t, tools[1:], c.UpgradeTools())
	assert.Equal(t, weapons[1:], c.UpgradeWeapons())
}

func TestDefault_MineralsHaveDistinctKeys(t *testing.T) {
	c := Default()
	keys := make(map[string]bool)
	for _, m := range c.AllMinerals() {
		assert.False(t, keys[m.Key], "duplicate mineral key %s", m.Key)
		keys[m.Key] = true
	}
	assert.Len(t, keys, 5)
	for _, k := range []string{domain.MineralGold, domain.MineralAlbamorium, domain.MineralIgsite, domain.MineralStone, domain.MineralRock} {
		assert.True(t, keys[k], "missing mineral %s", k)
	}
}

func TestDefault_EnemyNamesAreDistinct(t *testing.T) {
	names := make(map[string]bool)
	for _, e := range Default().AllEnemies() {
		assert.False(t, names[e.Name], "duplicate enemy name %s", e.Name)
		names[e.Name] = true
	}
}

func TestAccessors_ReturnCopies(t *testing.T) {
	c := Default()
	tools := c.AllTools()
	tools[0].MiningPower = 99
	minerals := c.AllMinerals()
	minerals[0].Size = 999

	assert.Equal(t, 1, c.BaseTool().MiningPower)
	assert.Equal(t, 5, c.AllMinerals()[0].Size)
}

func TestRandomMineral_CoversCatalog(t *testing.T) {
	c := Default()
	r := utils.NewRoller(3)
	counts := make(map[string]int)
	const trials = 5000
	for i := 0; i < trials; i++ {
		counts[c.RandomMineral(r).Key]++
	}

	require.Len(t, counts, len(c.Minerals))
	expected := trials / len(c.Minerals)
	for key, n := range counts {
		assert.InDelta(t, expected, n, float64(expected)*0.2, "mineral %s drawn %d times", key, n)
	}
}

func TestRandomEnemy_CoversCatalog(t *testing.T) {
	c := Default()
	r := utils.NewRoller(5)
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		seen[c.RandomEnemy(r).Key] = true
	}
	assert.Len(t, seen, len(c.Enemies))
}

func TestLookup(t *testing.T) {
	c := Default()

	m, ok := c.Mineral(domain.MineralGold)
	require.True(t, ok)
	assert.Equal(t, 50, m.Gold)

	e, ok := c.Enemy(domain.EnemyCadosaurus)
	require.True(t, ok)
	assert.Equal(t, 90, e.GoldCredits)

	_, ok = c.Mineral("unobtainium")
	assert.False(t, ok)
	_, ok = c.Enemy("dragon")
	assert.False(t, ok)
}

func TestLoad_ShippedFileMatchesDefault(t *testing.T) {
	c, err := Load(filepath.Join("..", "..", "configs", "catalog.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
		return path
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := Load(write("bad.json", "{"))
		assert.Error(t, err)
	})

	t.Run("wrong version", func(t *testing.T) {
		_, err := Load(write("version.json", `{"version":"0.1"}`))
		assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
	})

	t.Run("empty sections", func(t *testing.T) {
		_, err := Load(write("empty.json", `{"version":"1.0","tools":[],"weapons":[],"minerals":[],"enemies":[]}`))
		assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
	})
}

func TestValidate_RejectsDuplicates(t *testing.T) {
	c := Default()
	c.Minerals = append(c.Minerals, domain.Mineral{Key: domain.MineralStone, Name: "stone", Size: 1, Gold: 1, Experience: 1})

	err := c.Validate()
	require.ErrorIs(t, err, domain.ErrInvalidCatalog)
	assert.Contains(t, err.Error(), "duplicate mineral")
}

func TestValidate_RejectsEmptySections(t *testing.T) {
	noMinerals := Default()
	noMinerals.Minerals = nil
	assert.ErrorIs(t, noMinerals.Validate(), domain.ErrEmptyCatalog)

	noEnemies := Default()
	noEnemies.Enemies = nil
	assert.ErrorIs(t, noEnemies.Validate(), domain.ErrEmptyCatalog)
}

func TestValidate_RejectsSingleTier(t *testing.T) {
	c := Default()
	c.Tools = c.Tools[:1]
	assert.ErrorIs(t, c.Validate(), domain.ErrInvalidCatalog)
}

func TestValidate_RejectsHarmlessWeapons(t *testing.T) {
	c := Default()
	for i := range c.Weapons {
		c.Weapons[i].Damage = 0
	}
	for i := range c.Enemies {
		c.Enemies[i].Damage = 0
	}
	assert.ErrorIs(t, c.Validate(), domain.ErrInvalidCatalog)

	c = Default()
	c.Weapons[0].Damage = 0
	assert.ErrorIs(t, c.Validate(), domain.ErrInvalidCatalog)
}

func TestValidate_RejectsNegativeValues(t *testing.T) {
	c := Default()
	c.Weapons[1].Damage = -1
	assert.ErrorIs(t, c.Validate(), domain.ErrInvalidCatalog)

	c = Default()
	c.Tools[2].Price = -5
	assert.ErrorIs(t, c.Validate(), domain.ErrInvalidCatalog)
}
