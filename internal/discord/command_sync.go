package discord

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// RegisterCommands pushes the registry to Discord. The bulk overwrite is
// skipped when the registered set already matches, since Discord rate limits
// command updates.
func (b *Bot) RegisterCommands(registry *CommandRegistry, forceUpdate bool) error {
	slog.Info(LogMsgCommandsChecking, "guild_id", b.GuildID, "force", forceUpdate)

	existing, err := b.Session.ApplicationCommands(b.AppID, b.GuildID)
	if err != nil {
		return fmt.Errorf(ErrMsgFetchCommandsFmt, err)
	}

	desired := make([]*discordgo.ApplicationCommand, 0, len(registry.Commands))
	for _, cmd := range registry.Commands {
		desired = append(desired, cmd)
	}

	if !forceUpdate && commandsEqual(existing, desired) {
		slog.Info(LogMsgCommandsUnchanged, "count", len(existing))
		return nil
	}

	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, b.GuildID, desired); err != nil {
		return fmt.Errorf(ErrMsgOverwriteCommandsFmt, err)
	}
	slog.Info(LogMsgCommandsUpdated, "existing", len(existing), "desired", len(desired))
	return nil
}

// commandsEqual reports whether both sets describe the same commands,
// ignoring order and server-assigned fields such as IDs.
func commandsEqual(existing, desired []*discordgo.ApplicationCommand) bool {
	if len(existing) != len(desired) {
		return false
	}
	return commandSetSignature(existing) == commandSetSignature(desired)
}

func commandSetSignature(cmds []*discordgo.ApplicationCommand) string {
	sigs := make([]string, len(cmds))
	for i, cmd := range cmds {
		sigs[i] = commandSignature(cmd)
	}
	sort.Strings(sigs)
	return strings.Join(sigs, "\n")
}

// commandSignature flattens the user-visible parts of a command
func commandSignature(cmd *discordgo.ApplicationCommand) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s|%s", cmd.Name, cmd.Description)
	if cmd.DefaultMemberPermissions != nil {
		fmt.Fprintf(&b, "|perm=%d", *cmd.DefaultMemberPermissions)
	}
	writeOptions(&b, cmd.Options)
	return b.String()
}

func writeOptions(b *strings.Builder, opts []*discordgo.ApplicationCommandOption) {
	for _, o := range opts {
		fmt.Fprintf(b, "|opt(%d,%s,%s,%t", o.Type, o.Name, o.Description, o.Required)
		for _, c := range o.Choices {
			fmt.Fprintf(b, ",%s=%v", c.Name, c.Value)
		}
		writeOptions(b, o.Options)
		b.WriteString(")")
	}
}
