package discord

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PrintMiner_Go/internal/combat"
	"github.com/osse101/PrintMiner_Go/internal/domain"
	"github.com/osse101/PrintMiner_Go/internal/game"
	"github.com/osse101/PrintMiner_Go/internal/player"
	"github.com/osse101/PrintMiner_Go/internal/shop"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name      string
		fraction  float64
		remaining int
	}{
		{name: "untouched", fraction: 1, remaining: 15},
		{name: "done", fraction: 0, remaining: 0},
		{name: "half rounds up", fraction: 0.5, remaining: 8},
		{name: "one of five left", fraction: 0.2, remaining: 3},
		{name: "clamped above", fraction: 1.5, remaining: 15},
		{name: "clamped below", fraction: -1, remaining: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := progressBar(tt.fraction)
			assert.Equal(t, ProgressBarSlots, utf8.RuneCountInString(bar))
			assert.Equal(t, tt.remaining, strings.Count(bar, ProgressBarRemaining))
			assert.Equal(t, ProgressBarSlots-tt.remaining, strings.Count(bar, ProgressBarMined))
			assert.True(t, strings.HasPrefix(bar, strings.Repeat(ProgressBarRemaining, tt.remaining)))
		})
	}
}

func TestCustomID(t *testing.T) {
	for _, a := range game.AllActions {
		got, ok := parseCustomID(customID(a))
		require.True(t, ok, "action %s", a)
		assert.Equal(t, a, got)
	}

	_, ok := parseCustomID("printminer:dance")
	assert.False(t, ok)
	_, ok = parseCustomID("mine")
	assert.False(t, ok, "missing prefix")
}

func TestActionButtons(t *testing.T) {
	t.Run("one row in action order", func(t *testing.T) {
		rows := actionButtons(game.StateShop.Actions())
		require.Len(t, rows, 1)
		row := rows[0].(discordgo.ActionsRow)

		var labels []string
		for _, c := range row.Components {
			labels = append(labels, c.(discordgo.Button).Label)
		}
		assert.Equal(t, []string{"Buy Health", "Buy Weapon", "Buy Tool", "Back"}, labels)
	})

	t.Run("every action has a button", func(t *testing.T) {
		for _, a := range game.AllActions {
			_, ok := buttonStyles[a]
			assert.True(t, ok, "action %s", a)
		}
	})

	t.Run("no actions clears buttons", func(t *testing.T) {
		rows := actionButtons(nil)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})

	t.Run("wraps after five buttons", func(t *testing.T) {
		rows := actionButtons(game.AllActions)
		require.Len(t, rows, 3)
		assert.Len(t, rows[0].(discordgo.ActionsRow).Components, maxButtonsPerRow)
		assert.Len(t, rows[2].(discordgo.ActionsRow).Components, len(game.AllActions)-2*maxButtonsPerRow)
	})
}

func testSnapshot() player.Snapshot {
	return player.Snapshot{
		Name:        player.DefaultName,
		GoldCredits: 120,
		Health:      40,
		MaxHealth:   50,
		ToolName:    domain.ToolPickaxe,
		MiningPower: 1,
		WeaponName:  domain.WeaponHammer,
		Damage:      20,
		GoldFound:   30,
		Experience:  25,
		Level:       1,
		NextLevelAt: 100,
	}
}

func TestProgressEmbed(t *testing.T) {
	embed := progressEmbed(game.Progress{
		Player:   testSnapshot(),
		Mining:   game.MiningInfo{Mineral: domain.Mineral{Name: "albamorium"}, Remaining: 20},
		Fraction: 20.0 / 30.0,
	})

	assert.Equal(t, "Mining Albamorium | Gold : 30", embed.Title)
	assert.Contains(t, embed.Description, "chunks remaining : 20")
	assert.Contains(t, embed.Description, progressBar(20.0/30.0))
	assert.Contains(t, embed.Description, "Miner Lvl : 1")
	assert.Equal(t, FooterPrintMiner, embed.Footer.Text)
}

func TestEventEmbed_Shop(t *testing.T) {
	e := game.Event{
		Kind:   game.EventShop,
		Player: testSnapshot(),
		Shop: game.ShopInfo{
			HealPrice: 100,
			Tool:      domain.Tool{Item: domain.Item{Name: domain.ToolPickaxeII, Price: 250}, MiningPower: 2},
			Weapon:    domain.OutOfStockWeapon,
		},
	}

	embed := eventEmbed(e)
	assert.Equal(t, TitleShop, embed.Title)
	assert.Contains(t, embed.Description, "Your credits : 120")
	assert.Contains(t, embed.Description, "Heal : **40 / 50** for 100")
	assert.Contains(t, embed.Description, "Weapon : **"+domain.OutOfStockName+"** for 0")
	assert.Contains(t, embed.Description, "Tool : **PickaxeII** for 250")

	e.Player.Health = e.Player.MaxHealth
	assert.Contains(t, eventEmbed(e).Description, "Health is full ! **50 / 50**")
}

func TestEventEmbed_Titles(t *testing.T) {
	snap := testSnapshot()
	enemy := domain.Enemy{Name: "Cadosaurus", Damage: 10, MaxHealth: 90, GoldCredits: 90}
	gold := game.MiningInfo{Mineral: domain.Mineral{Name: "gold"}, Remaining: 7, GoldFound: 30}

	tests := []struct {
		name  string
		event game.Event
		title string
		desc  string
	}{
		{name: "welcome", event: game.Event{Kind: game.EventWelcome}, title: TitleWelcome},
		{name: "menu", event: game.Event{Kind: game.EventMenu}, title: TitleMenu},
		{name: "closed", event: game.Event{Kind: game.EventClosed}, title: TitleClosed},
		{name: "mining started", event: game.Event{Kind: game.EventMiningStarted, Mining: gold}, title: "Mining Gold"},
		{
			name:  "mining cancelled",
			event: game.Event{Kind: game.EventMiningCancelled, Mining: gold},
			title: "Mining Gold ABORTED",
			desc:  "chunks remaining : 7\n gold collected : 30",
		},
		{
			name:  "mining continue",
			event: game.Event{Kind: game.EventMiningContinue, Mining: gold, Player: snap},
			title: "You have 120 credits.",
			desc:  "Accumulated gold: 30 from Gold, continue?",
		},
		{name: "level up", event: game.Event{Kind: game.EventLevelUp, Player: snap}, title: TitleLevelUp, desc: "Health: 40 / 50"},
		{
			name:  "encounter",
			event: game.Event{Kind: game.EventFightEncounter, Fight: game.FightInfo{Enemy: enemy}},
			title: "ENEMY ENCOUNTER : Cadosaurus",
			desc:  DescEncounter,
		},
		{
			name: "player attack",
			event: game.Event{Kind: game.EventPlayerAttack, Player: snap, Fight: game.FightInfo{
				Enemy: enemy, EnemyHealth: 52, EnemyMaxHealth: 72,
				Turn: combat.Turn{Attacker: combat.AttackerPlayer, Damage: 20},
			}},
			title: "You dealt 20 to Cadosaurus",
			desc:  "Your health : 40 / 50\nCadosaurus health : 52 / 72",
		},
		{
			name: "enemy attack",
			event: game.Event{Kind: game.EventEnemyAttack, Player: snap, Fight: game.FightInfo{
				Enemy: enemy, Turn: combat.Turn{Attacker: combat.AttackerEnemy, Damage: 10},
			}},
			title: "Cadosaurus attacked you with 10 damage",
		},
		{
			name:  "fight lost",
			event: game.Event{Kind: game.EventFightLost, Fight: game.FightInfo{Enemy: enemy}},
			title: "Cadosaurus killed you with 10 damage",
			desc:  DescFightLost,
		},
		{
			name: "flee robbed",
			event: game.Event{Kind: game.EventFleeRobbed, Player: snap, Fight: game.FightInfo{
				Enemy: enemy, Flee: combat.FleeResult{Outcome: combat.OutcomeFledRobbed, Amount: 150, CreditsLost: 120},
			}},
			title: "As you fled, the Cadosaurus stole 120 CREDITS",
			desc:  "Credits remaining : 120\nMine elsewhere?",
		},
		{name: "unavailable", event: game.Event{Kind: game.EventUnavailable}, title: TitleUnavailable, desc: DescUnavailable},
		{name: "abort", event: game.Event{Kind: game.EventAbort}, title: TitleAborted, desc: DescAborted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			embed := eventEmbed(tt.event)
			assert.Equal(t, tt.title, embed.Title)
			if tt.desc != "" {
				assert.Equal(t, tt.desc, embed.Description)
			}
		})
	}
}

func TestEventEmbed_Purchases(t *testing.T) {
	snap := testSnapshot()
	snap.ToolName, snap.MiningPower = domain.ToolPickaxeII, 2

	tool := eventEmbed(game.Event{Kind: game.EventPurchase, Player: snap, Purchase: game.PurchaseInfo{Kind: shop.KindTool, Success: true}})
	assert.Equal(t, "Purchased PickaxeII", tool.Title)
	assert.Equal(t, "Your mining power is now 2 (mp)", tool.Description)

	weapon := eventEmbed(game.Event{Kind: game.EventPurchase, Player: snap, Purchase: game.PurchaseInfo{Kind: shop.KindWeapon, Success: true}})
	assert.Equal(t, "Purchased Hammer", weapon.Title)
	assert.Equal(t, "Your damage power is now 20 (dmg)", weapon.Description)

	heal := eventEmbed(game.Event{Kind: game.EventPurchase, Player: snap, Purchase: game.PurchaseInfo{Kind: shop.KindHeal, Success: true}})
	assert.Equal(t, TitleHealPurchased, heal.Title)
	assert.Contains(t, heal.Description, "40 / 50")
}

func TestEventEmbed_Stats(t *testing.T) {
	embed := eventEmbed(game.Event{Kind: game.EventStats, Player: testSnapshot()})

	assert.Equal(t, TitleStats, embed.Title)
	for _, want := range []string{
		"Health: 40 / 50",
		fmt.Sprintf("%s : 1 mp", domain.ToolPickaxe),
		fmt.Sprintf("%s : 20 dmg", domain.WeaponHammer),
		"Credits : 120",
		"Experience : 25 / 100",
		"Level : 1",
	} {
		assert.Contains(t, embed.Description, want)
	}
}
