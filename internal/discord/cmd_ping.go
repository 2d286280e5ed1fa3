package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// SessionCounter reports how many games are open
type SessionCounter interface {
	Len() int
}

// PingCommand returns the ping command definition and handler. The reply
// is only shown to the caller and includes the number of open games.
func PingCommand(sessions SessionCounter) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "ping",
		Description: "Check if the mine is open",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		respondEphemeral(s, i, fmt.Sprintf(MsgPongFmt, sessions.Len()))
	}

	return cmd, handler
}
