package console

import (
	"github.com/gdamore/tcell/v2"

	"github.com/osse101/PrintMiner_Go/internal/game"
)

// QuitKey ends the console session
const QuitKey = 'q'

// actionKeys binds each action to a single key
var actionKeys = map[game.Action]rune{
	game.ActionStart:     'g',
	game.ActionMine:      'm',
	game.ActionShop:      's',
	game.ActionStats:     't',
	game.ActionAbort:     'a',
	game.ActionBuyHeal:   'h',
	game.ActionBuyWeapon: 'w',
	game.ActionBuyTool:   'o',
	game.ActionFight:     'f',
	game.ActionFlee:      'r',
	game.ActionCancel:    'c',
	game.ActionBack:      'b',
}

var actionLabels = map[game.Action]string{
	game.ActionStart:     "start",
	game.ActionMine:      "mine",
	game.ActionShop:      "shop",
	game.ActionStats:     "stats",
	game.ActionAbort:     "abort",
	game.ActionBuyHeal:   "buy health",
	game.ActionBuyWeapon: "buy weapon",
	game.ActionBuyTool:   "buy tool",
	game.ActionFight:     "attack",
	game.ActionFlee:      "flee",
	game.ActionCancel:    "cancel",
	game.ActionBack:      "back",
}

// keyResult is what a key press means for the offered actions
type keyResult int

const (
	keyIgnored keyResult = iota
	keyAction
	keyQuit
)

// resolveKey maps a key press to one of the offered actions.
// Enter picks the first offered action.
func resolveKey(ev *tcell.EventKey, offered []game.Action) (game.Action, keyResult) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return "", keyQuit
	case tcell.KeyEnter:
		if len(offered) > 0 {
			return offered[0], keyAction
		}
		return "", keyIgnored
	case tcell.KeyRune:
	default:
		return "", keyIgnored
	}

	r := ev.Rune()
	if r == QuitKey {
		return "", keyQuit
	}
	for _, a := range offered {
		if actionKeys[a] == r {
			return a, keyAction
		}
	}
	return "", keyIgnored
}

// boundAction reports the action bound to a rune key, offered or not
func boundAction(ev *tcell.EventKey) (game.Action, bool) {
	if ev.Key() != tcell.KeyRune {
		return "", false
	}
	for a, r := range actionKeys {
		if r == ev.Rune() {
			return a, true
		}
	}
	return "", false
}
