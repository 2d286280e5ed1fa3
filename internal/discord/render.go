package discord

import (
	"fmt"
	"math"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/PrintMiner_Go/internal/game"
	"github.com/osse101/PrintMiner_Go/internal/player"
	"github.com/osse101/PrintMiner_Go/internal/shop"
)

// Progress bar glyphs
const (
	ProgressBarSlots     = 15
	ProgressBarRemaining = "◌"
	ProgressBarMined     = "●"
)

// Embed colors
const (
	ColorMenu    = 0x2ecc71
	ColorMining  = 0xf1c40f
	ColorFight   = 0xe74c3c
	ColorShop    = 0x3498db
	ColorStats   = 0x95a5a6
	ColorAborted = 0x7f8c8d
)

var titleCaser = cases.Title(language.English)

// progressBar draws the remaining share of a mineral as a fixed-width bar
func progressBar(fraction float64) string {
	remaining := int(math.Round(fraction * ProgressBarSlots))
	remaining = max(0, min(ProgressBarSlots, remaining))
	return strings.Repeat(ProgressBarRemaining, remaining) + strings.Repeat(ProgressBarMined, ProgressBarSlots-remaining)
}

func mineralName(info game.MiningInfo) string {
	return titleCaser.String(info.Mineral.Name)
}

// progressEmbed renders one mining step
func progressEmbed(p game.Progress) *discordgo.MessageEmbed {
	return createEmbed(
		fmt.Sprintf(TitleMiningProgress, mineralName(p.Mining), p.Player.GoldFound),
		fmt.Sprintf(DescMiningProgressFmt, p.Mining.Remaining, progressBar(p.Fraction), p.Player.Level),
		ColorMining)
}

func fightHealth(e game.Event) string {
	f := e.Fight
	return fmt.Sprintf(DescFightHealthFmt, e.Player.Health, e.Player.MaxHealth, f.Enemy.Name, f.EnemyHealth, f.EnemyMaxHealth)
}

func healthLine(p player.Snapshot) string {
	return fmt.Sprintf(DescHealthFmt, p.Health, p.MaxHealth)
}

// shopLines returns the heal, weapon and tool offers
func shopLines(e game.Event) (string, string, string) {
	heal := fmt.Sprintf(DescHealFull, e.Player.Health, e.Player.MaxHealth)
	if e.Player.Health < e.Player.MaxHealth {
		heal = fmt.Sprintf(DescHealOffer, e.Player.Health, e.Player.MaxHealth, e.Shop.HealPrice)
	}
	weapon := fmt.Sprintf(DescWeaponOffer, e.Shop.Weapon.Name, e.Shop.Weapon.Price)
	tool := fmt.Sprintf(DescToolOffer, e.Shop.Tool.Name, e.Shop.Tool.Price)
	return heal, weapon, tool
}

func statsDescription(p player.Snapshot) string {
	return fmt.Sprintf(DescStatsFmt,
		p.Health, p.MaxHealth,
		p.ToolName, p.MiningPower,
		p.WeaponName, p.Damage,
		p.GoldCredits,
		p.Experience, p.NextLevelAt,
		p.Level)
}

func purchaseEmbed(e game.Event) *discordgo.MessageEmbed {
	switch e.Purchase.Kind {
	case shop.KindHeal:
		return createEmbed(TitleHealPurchased, fmt.Sprintf(DescHealed, e.Player.Health, e.Player.MaxHealth), ColorShop)
	case shop.KindWeapon:
		return createEmbed(fmt.Sprintf(TitleItemPurchased, e.Player.WeaponName), fmt.Sprintf(DescWeaponPurchased, e.Player.Damage), ColorShop)
	default:
		return createEmbed(fmt.Sprintf(TitleItemPurchased, e.Player.ToolName), fmt.Sprintf(DescToolPurchased, e.Player.MiningPower), ColorShop)
	}
}

// eventEmbed renders a game event
func eventEmbed(e game.Event) *discordgo.MessageEmbed {
	m, f := e.Mining, e.Fight
	switch e.Kind {
	case game.EventWelcome:
		return createEmbed(TitleWelcome, "", ColorMenu)
	case game.EventMenu:
		return createEmbed(TitleMenu, "", ColorMenu)
	case game.EventClosed:
		return createEmbed(TitleClosed, "", ColorAborted)

	case game.EventMiningStarted:
		return createEmbed(fmt.Sprintf(TitleMiningFmt, mineralName(m)), "", ColorMining)
	case game.EventMiningCancelled:
		return createEmbed(fmt.Sprintf(TitleMiningAborted, mineralName(m)),
			fmt.Sprintf(DescMiningAbortedFmt, m.Remaining, m.GoldFound), ColorMining)
	case game.EventMiningComplete:
		return createEmbed(fmt.Sprintf(TitleCreditsFmt, e.Player.GoldCredits),
			fmt.Sprintf(DescMiningCompleteFmt, m.GoldFound, mineralName(m)), ColorMining)
	case game.EventMiningContinue:
		return createEmbed(fmt.Sprintf(TitleCreditsFmt, e.Player.GoldCredits),
			fmt.Sprintf(DescMiningContinueFmt, m.GoldFound, mineralName(m)), ColorMenu)
	case game.EventLevelUp:
		return createEmbed(TitleLevelUp, healthLine(e.Player), ColorMenu)

	case game.EventFightEncounter:
		return createEmbed(fmt.Sprintf(TitleEncounterFmt, f.Enemy.Name), DescEncounter, ColorFight)
	case game.EventFightRound:
		return createEmbed(fmt.Sprintf(TitleRoundFmt, f.Enemy.Name), fightHealth(e)+"\n\n"+DescRound, ColorFight)
	case game.EventPlayerAttack:
		return createEmbed(fmt.Sprintf(TitlePlayerAttackFmt, f.Turn.Damage, f.Enemy.Name), fightHealth(e), ColorFight)
	case game.EventEnemyAttack:
		return createEmbed(fmt.Sprintf(TitleEnemyAttackFmt, f.Enemy.Name, f.Turn.Damage), fightHealth(e), ColorFight)
	case game.EventFightWon:
		return createEmbed(fmt.Sprintf(TitleFightWonFmt, f.Enemy.Name, e.Player.Damage), healthLine(e.Player), ColorMenu)
	case game.EventFightLost:
		return createEmbed(fmt.Sprintf(TitleFightLostFmt, f.Enemy.Name, f.Enemy.Damage), DescFightLost, ColorFight)
	case game.EventFleeSuccess:
		return createEmbed(fmt.Sprintf(TitleFleeSuccessFmt, f.Enemy.Name), DescFleeSuccess, ColorMenu)
	case game.EventFleeRobbed:
		return createEmbed(fmt.Sprintf(TitleFleeRobbedFmt, f.Enemy.Name, f.Flee.CreditsLost),
			fmt.Sprintf(DescFleeRobbedFmt, e.Player.GoldCredits), ColorFight)

	case game.EventShop:
		heal, weapon, tool := shopLines(e)
		return createEmbed(TitleShop, fmt.Sprintf(DescShopFmt, e.Player.GoldCredits, heal, weapon, tool), ColorShop)
	case game.EventPurchase:
		return purchaseEmbed(e)
	case game.EventUnavailable:
		return createEmbed(TitleUnavailable, DescUnavailable, ColorShop)

	case game.EventStats:
		return createEmbed(TitleStats, statsDescription(e.Player), ColorStats)
	case game.EventAbort:
		return createEmbed(TitleAborted, DescAborted, ColorAborted)
	}
	return createEmbed(string(e.Kind), "", ColorStats)
}
