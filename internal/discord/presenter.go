package discord

import (
	"context"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/PrintMiner_Go/internal/game"
)

// Presenter renders one game session into the message of the interaction
// it is bound to. Every button press rebinds it, so edits always target the
// message the player last touched.
type Presenter struct {
	session *discordgo.Session

	mu          sync.Mutex
	interaction *discordgo.Interaction
}

// NewPresenter creates a presenter bound to i
func NewPresenter(s *discordgo.Session, i *discordgo.Interaction) *Presenter {
	return &Presenter{session: s, interaction: i}
}

// Bind points later edits at i
func (p *Presenter) Bind(i *discordgo.Interaction) {
	p.mu.Lock()
	p.interaction = i
	p.mu.Unlock()
}

// PresentProgress shows a mining step with its progress bar
func (p *Presenter) PresentProgress(ctx context.Context, prog game.Progress) error {
	return p.edit(ctx, progressEmbed(prog), actionButtons([]game.Action{game.ActionCancel}))
}

// PresentEvent shows an event with a button per offered action
func (p *Presenter) PresentEvent(ctx context.Context, e game.Event) error {
	return p.edit(ctx, eventEmbed(e), actionButtons(e.Actions))
}

func (p *Presenter) edit(ctx context.Context, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) error {
	p.mu.Lock()
	i := p.interaction
	p.mu.Unlock()

	content := ""
	_, err := p.session.InteractionResponseEdit(i, &discordgo.WebhookEdit{
		Content:    &content,
		Embeds:     &[]*discordgo.MessageEmbed{embed},
		Components: &components,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("edit interaction response: %w", err)
	}
	return nil
}
