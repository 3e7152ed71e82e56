// Package slack_integration delivers rendered reports to Slack.
package slack_integration

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"
)

type Config struct {
	BotToken     string `split_words:"true"`
	DevChannelID string `split_words:"true"`
}

// Enabled reports whether a bot token is configured.
func (c Config) Enabled() bool {
	return c.BotToken != ""
}

type Integration struct {
	c Config

	BotUserID string
	client    *slack.Client
}

func New(ctx context.Context, c Config) (*Integration, error) {
	api := slack.New(c.BotToken)

	authTest, err := api.AuthTestContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("slack API test failed: %w", err)
	}

	return &Integration{
		c:         c,
		BotUserID: authTest.UserID,
		client:    api,
	}, nil
}

func (b *Integration) Client() *slack.Client {
	return b.client
}

// PostMessage delivers the report blocks to channelID, or to the dev
// channel when one is configured.
func (b *Integration) PostMessage(ctx context.Context, channelID string, messageBlocks ...slack.Block) error {
	if b.c.DevChannelID != "" {
		channelID = b.c.DevChannelID
	}

	if _, _, err := b.client.PostMessageContext(
		ctx,
		channelID,
		slack.MsgOptionBlocks(messageBlocks...),
	); err != nil {
		return fmt.Errorf("posting report message: %w", err)
	}

	return nil
}
