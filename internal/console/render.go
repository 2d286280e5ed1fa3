package console

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/PrintMiner_Go/internal/game"
	"github.com/osse101/PrintMiner_Go/internal/player"
	"github.com/osse101/PrintMiner_Go/internal/shop"
)

// Progress bar glyphs
const (
	ProgressBarSlots     = 15
	ProgressBarRemaining = '◌'
	ProgressBarMined     = '●'
)

// Screen styles
var (
	StyleMenu    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	StyleMining  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	StyleFight   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	StyleShop    = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	StyleStats   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	StyleAborted = tcell.StyleDefault.Foreground(tcell.ColorGray)
	StyleHint    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
)

var titleCaser = cases.Title(language.English)

// frame is one full screen of output
type frame struct {
	title   string
	lines   []string
	style   tcell.Style
	actions []game.Action
}

// progressBar draws the remaining share of a mineral as a fixed-width bar
func progressBar(fraction float64) string {
	remaining := int(math.Round(fraction * ProgressBarSlots))
	remaining = max(0, min(ProgressBarSlots, remaining))
	return strings.Repeat(string(ProgressBarRemaining), remaining) +
		strings.Repeat(string(ProgressBarMined), ProgressBarSlots-remaining)
}

func mineralName(info game.MiningInfo) string {
	return titleCaser.String(info.Mineral.Name)
}

// hints lists the key for each offered action, then quit
func hints(actions []game.Action) string {
	parts := make([]string, 0, len(actions)+1)
	for _, a := range actions {
		parts = append(parts, fmt.Sprintf(HintKeyFmt, actionKeys[a], actionLabels[a]))
	}
	parts = append(parts, HintQuit)
	return strings.Join(parts, HintSeparator)
}

func progressFrame(p game.Progress) frame {
	return frame{
		title: fmt.Sprintf(TitleMiningProgress, mineralName(p.Mining), p.Player.GoldFound),
		lines: []string{
			fmt.Sprintf(LineChunksFmt, p.Mining.Remaining),
			progressBar(p.Fraction),
			fmt.Sprintf(LineLevelFmt, p.Player.Level),
		},
		style:   StyleMining,
		actions: []game.Action{game.ActionCancel},
	}
}

func fightLines(e game.Event) []string {
	f := e.Fight
	return []string{
		fmt.Sprintf(LineYourHealthFmt, e.Player.Health, e.Player.MaxHealth),
		fmt.Sprintf(LineEnemyHealthFmt, f.Enemy.Name, f.EnemyHealth, f.EnemyMaxHealth),
	}
}

func healthLine(p player.Snapshot) string {
	return fmt.Sprintf(LineHealthFmt, p.Health, p.MaxHealth)
}

func shopLines(e game.Event) []string {
	heal := fmt.Sprintf(LineHealFull, e.Player.Health, e.Player.MaxHealth)
	if e.Player.Health < e.Player.MaxHealth {
		heal = fmt.Sprintf(LineHealOffer, e.Player.Health, e.Player.MaxHealth, e.Shop.HealPrice)
	}
	return []string{
		fmt.Sprintf(LineYourCreditsFmt, e.Player.GoldCredits),
		"",
		heal,
		fmt.Sprintf(LineWeaponOffer, e.Shop.Weapon.Name, e.Shop.Weapon.Price),
		fmt.Sprintf(LineToolOffer, e.Shop.Tool.Name, e.Shop.Tool.Price),
	}
}

func statsLines(p player.Snapshot) []string {
	return []string{
		healthLine(p),
		fmt.Sprintf(LineToolFmt, p.ToolName, p.MiningPower),
		fmt.Sprintf(LineWeaponFmt, p.WeaponName, p.Damage),
		fmt.Sprintf(LineCreditsFmt, p.GoldCredits),
		fmt.Sprintf(LineExperienceFmt, p.Experience, p.NextLevelAt),
		fmt.Sprintf(LineLevelNumFmt, p.Level),
	}
}

func purchaseFrame(e game.Event) frame {
	switch e.Purchase.Kind {
	case shop.KindHeal:
		return frame{title: TitleHealPurchased, lines: []string{fmt.Sprintf(LineHealed, e.Player.Health, e.Player.MaxHealth)}, style: StyleShop}
	case shop.KindWeapon:
		return frame{title: fmt.Sprintf(TitleItemPurchased, e.Player.WeaponName), lines: []string{fmt.Sprintf(LineWeaponPurchased, e.Player.Damage)}, style: StyleShop}
	default:
		return frame{title: fmt.Sprintf(TitleItemPurchased, e.Player.ToolName), lines: []string{fmt.Sprintf(LineToolPurchased, e.Player.MiningPower)}, style: StyleShop}
	}
}

// eventFrame renders a game event with its offered actions
func eventFrame(e game.Event) frame {
	fr := eventBody(e)
	fr.actions = e.Actions
	return fr
}

func eventBody(e game.Event) frame {
	m, f := e.Mining, e.Fight
	switch e.Kind {
	case game.EventWelcome:
		return frame{title: TitleWelcome, style: StyleMenu}
	case game.EventMenu:
		return frame{title: TitleMenu, style: StyleMenu}
	case game.EventClosed:
		return frame{title: TitleClosed, style: StyleAborted}

	case game.EventMiningStarted:
		return frame{title: fmt.Sprintf(TitleMiningFmt, mineralName(m)), style: StyleMining}
	case game.EventMiningCancelled:
		return frame{
			title: fmt.Sprintf(TitleMiningAborted, mineralName(m)),
			lines: []string{fmt.Sprintf(LineChunksFmt, m.Remaining), fmt.Sprintf(LineGoldFmt, m.GoldFound)},
			style: StyleMining,
		}
	case game.EventMiningComplete:
		return frame{
			title: fmt.Sprintf(TitleCreditsFmt, e.Player.GoldCredits),
			lines: []string{fmt.Sprintf(LineAccumulatedFmt, m.GoldFound, mineralName(m))},
			style: StyleMining,
		}
	case game.EventMiningContinue:
		return frame{
			title: fmt.Sprintf(TitleCreditsFmt, e.Player.GoldCredits),
			lines: []string{fmt.Sprintf(LineAccumulatedFmt, m.GoldFound, mineralName(m)), LineContinue},
			style: StyleMenu,
		}
	case game.EventLevelUp:
		return frame{title: TitleLevelUp, lines: []string{healthLine(e.Player)}, style: StyleMenu}

	case game.EventFightEncounter:
		return frame{title: fmt.Sprintf(TitleEncounterFmt, f.Enemy.Name), lines: []string{LineEncounter}, style: StyleFight}
	case game.EventFightRound:
		return frame{title: fmt.Sprintf(TitleRoundFmt, f.Enemy.Name), lines: append(fightLines(e), "", LineRound), style: StyleFight}
	case game.EventPlayerAttack:
		return frame{title: fmt.Sprintf(TitlePlayerAttackFmt, f.Turn.Damage, f.Enemy.Name), lines: fightLines(e), style: StyleFight}
	case game.EventEnemyAttack:
		return frame{title: fmt.Sprintf(TitleEnemyAttackFmt, f.Enemy.Name, f.Turn.Damage), lines: fightLines(e), style: StyleFight}
	case game.EventFightWon:
		return frame{title: fmt.Sprintf(TitleFightWonFmt, f.Enemy.Name, e.Player.Damage), lines: []string{healthLine(e.Player)}, style: StyleMenu}
	case game.EventFightLost:
		return frame{title: fmt.Sprintf(TitleFightLostFmt, f.Enemy.Name, f.Enemy.Damage), lines: []string{LineFightLost}, style: StyleFight}
	case game.EventFleeSuccess:
		return frame{title: fmt.Sprintf(TitleFleeSuccessFmt, f.Enemy.Name), lines: []string{LineFleeSuccess}, style: StyleMenu}
	case game.EventFleeRobbed:
		return frame{
			title: fmt.Sprintf(TitleFleeRobbedFmt, f.Enemy.Name, f.Flee.CreditsLost),
			lines: []string{fmt.Sprintf(LineCreditsLeftFmt, e.Player.GoldCredits), LineMineElsewhere},
			style: StyleFight,
		}

	case game.EventShop:
		return frame{title: TitleShop, lines: shopLines(e), style: StyleShop}
	case game.EventPurchase:
		return purchaseFrame(e)
	case game.EventUnavailable:
		return frame{title: TitleUnavailable, lines: []string{LineUnavailable}, style: StyleShop}

	case game.EventStats:
		return frame{title: TitleStats, lines: statsLines(e.Player), style: StyleStats}
	case game.EventAbort:
		return frame{title: TitleAborted, lines: []string{LineAborted}, style: StyleAborted}
	}
	return frame{title: string(e.Kind), style: StyleStats}
}
