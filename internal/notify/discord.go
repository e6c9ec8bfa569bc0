package notify

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// webhookSession abstracts the discordgo methods we use, enabling test mocks.
type webhookSession interface {
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Discord posts events through a Discord webhook. Webhooks need no bot
// account or gateway connection, only the webhook id and token.
type Discord struct {
	sess      webhookSession
	webhookID string
	token     string
}

// DiscordOpts holds parameters for creating a Discord notifier.
type DiscordOpts struct {
	WebhookID    string
	WebhookToken string
	// For testing: inject a mock session instead of the real Discord API.
	Session webhookSession
}

// NewDiscord creates a Discord webhook notifier.
func NewDiscord(opts DiscordOpts) (*Discord, error) {
	if opts.WebhookID == "" || opts.WebhookToken == "" {
		return nil, fmt.Errorf("notify: discord webhook id and token are required")
	}
	sess := opts.Session
	if sess == nil {
		s, err := discordgo.New("")
		if err != nil {
			return nil, fmt.Errorf("notify: discord session: %w", err)
		}
		sess = s
	}
	return &Discord{sess: sess, webhookID: opts.WebhookID, token: opts.WebhookToken}, nil
}

// Send posts the event as a single embed.
func (d *Discord) Send(ctx context.Context, ev Event) error {
	params := &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{{
			Title:       ev.Title,
			Description: ev.Body,
		}},
	}
	_, err := d.sess.WebhookExecute(d.webhookID, d.token, false, params,
		discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("notify: discord webhook: %w", err)
	}
	return nil
}
