package discord

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/PrintMiner_Go/internal/domain"
	"github.com/osse101/PrintMiner_Go/internal/game"
	"github.com/osse101/PrintMiner_Go/internal/logger"
)

// PrintMineCommand returns the command that opens a game for the caller.
// Running it again replaces the caller's previous game.
func PrintMineCommand(manager *game.Manager) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "print-mine",
		Description: "Begin the Print Miner game",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		presenter := NewPresenter(s, i.Interaction)
		sess, err := manager.StartGame(context.Background(), user.ID, domain.PlatformDiscord, presenter)
		if err != nil {
			slog.Error(LogMsgStartGameFailed, "user_id", user.ID, "error", err)
			respondFriendlyError(s, i, err)
			return
		}
		slog.Debug("Game opened", "user_id", user.ID, logger.AttrKeySessionID, sess.ID)
	}

	return cmd, handler
}
