package discord

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/PrintMiner_Go/internal/domain"
	"github.com/osse101/PrintMiner_Go/internal/game"
	"github.com/osse101/PrintMiner_Go/internal/metrics"
	"github.com/osse101/PrintMiner_Go/internal/worker"
)

// CustomIDPrefix namespaces the bot's button ids
const CustomIDPrefix = "printminer:"

// maxButtonsPerRow is Discord's limit for one action row
const maxButtonsPerRow = 5

type buttonStyle struct {
	label string
	style discordgo.ButtonStyle
}

var buttonStyles = map[game.Action]buttonStyle{
	game.ActionStart:     {"Start", discordgo.SuccessButton},
	game.ActionCancel:    {"Cancel", discordgo.DangerButton},
	game.ActionMine:      {"Mine", discordgo.SuccessButton},
	game.ActionShop:      {"Shop", discordgo.PrimaryButton},
	game.ActionStats:     {"Stats", discordgo.SecondaryButton},
	game.ActionAbort:     {"Abort", discordgo.DangerButton},
	game.ActionBuyHeal:   {"Buy Health", discordgo.PrimaryButton},
	game.ActionBuyWeapon: {"Buy Weapon", discordgo.PrimaryButton},
	game.ActionBuyTool:   {"Buy Tool", discordgo.PrimaryButton},
	game.ActionBack:      {"Back", discordgo.SecondaryButton},
	game.ActionFight:     {"Attack", discordgo.DangerButton},
	game.ActionFlee:      {"Flee", discordgo.SuccessButton},
}

// customID returns the component id for an action
func customID(a game.Action) string {
	return CustomIDPrefix + string(a)
}

// parseCustomID returns the action a component id stands for
func parseCustomID(id string) (game.Action, bool) {
	name, ok := strings.CutPrefix(id, CustomIDPrefix)
	if !ok {
		return "", false
	}
	return game.ParseAction(name)
}

// actionButtons lays out one button per action. An empty list yields an
// empty, non-nil slice so an edit clears any previous buttons.
func actionButtons(actions []game.Action) []discordgo.MessageComponent {
	rows := []discordgo.MessageComponent{}
	var row []discordgo.MessageComponent
	for _, a := range actions {
		st, ok := buttonStyles[a]
		if !ok {
			continue
		}
		row = append(row, discordgo.Button{
			Label:    st.label,
			Style:    st.style,
			CustomID: customID(a),
		})
		if len(row) == maxButtonsPerRow {
			rows = append(rows, discordgo.ActionsRow{Components: row})
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, discordgo.ActionsRow{Components: row})
	}
	return rows
}

// handleComponent routes a button press to the presser's session. Cancel
// during mining runs inline; every other action runs on the worker pool.
func (b *Bot) handleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	action, ok := parseCustomID(i.MessageComponentData().CustomID)
	if !ok {
		slog.Debug(LogMsgUnknownComponent, "custom_id", i.MessageComponentData().CustomID)
		return
	}
	RecordCommand()
	metrics.DiscordCommands.WithLabelValues(string(action)).Inc()

	key := getInteractionUser(i).ID
	sess, err := b.Manager.Get(key)
	if err != nil {
		respondEphemeral(s, i, MsgNoGame)
		return
	}

	cancelMining := action == game.ActionCancel && sess.State() == game.StateMining
	if !cancelMining && !sess.State().Allows(action) {
		respondEphemeral(s, i, formatFriendlyError(domain.ErrActionUnavailable))
		return
	}

	if !deferUpdate(s, i) {
		return
	}
	if p, ok := sess.Presenter().(*Presenter); ok {
		p.Bind(i.Interaction)
	}

	if cancelMining {
		if err := b.Manager.Dispatch(context.Background(), key, action); err != nil {
			slog.Warn(LogMsgDispatchFailed, "action", action, "error", err)
		}
		return
	}

	job := worker.Named(string(action), worker.JobFunc(func(ctx context.Context) error {
		err := b.Manager.Dispatch(ctx, key, action)
		if err != nil && !errors.Is(err, context.Canceled) {
			respondFriendlyError(s, i, err)
		}
		return err
	}))
	if err := b.Pool.Enqueue(job); err != nil {
		slog.Warn(LogMsgEnqueueFailed, "action", action, "error", err)
		respondFriendlyError(s, i, err)
	}
}
