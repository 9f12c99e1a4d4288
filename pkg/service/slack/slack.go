package slack

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/bugtrail/pkg/domain/interfaces"
	"github.com/secmon-lab/bugtrail/pkg/domain/model"
	"github.com/secmon-lab/bugtrail/pkg/domain/types"
	"github.com/slack-go/slack"
)

// Service posts bug notifications to a Slack channel
type Service struct {
	client    *slack.Client
	channelID string
}

// Option configures Service
type Option func(*serviceConfig)

type serviceConfig struct {
	clientOptions []slack.Option
}

// WithAPIURL points the client at a different Slack API endpoint
func WithAPIURL(url string) Option {
	return func(c *serviceConfig) {
		c.clientOptions = append(c.clientOptions, slack.OptionAPIURL(url))
	}
}

// New creates a new Slack service
func New(token, channelID string, opts ...Option) *Service {
	var cfg serviceConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Service{
		client:    slack.New(token, cfg.clientOptions...),
		channelID: channelID,
	}
}

// PostMessage sends a message to the configured channel
func (s *Service) PostMessage(ctx context.Context, options ...slack.MsgOption) (string, string, error) {
	channel, timestamp, err := s.client.PostMessageContext(ctx, s.channelID, options...)
	if err != nil {
		return "", "", goerr.Wrap(err, "failed to post message to Slack",
			goerr.V("channelID", s.channelID))
	}
	return channel, timestamp, nil
}

// NotifyBugCreated implements interfaces.Notifier
func (s *Service) NotifyBugCreated(ctx context.Context, bug *model.BugReport) error {
	_, ts, err := s.PostMessage(ctx,
		slack.MsgOptionText(fallbackText(bug), false),
		slack.MsgOptionBlocks(BuildBugCreatedBlocks(bug)...),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to notify bug creation", goerr.V("bugID", bug.ID))
	}

	ctxlog.From(ctx).Debug("Bug creation notified", "bugID", bug.ID, "ts", ts)
	return nil
}

// NotifyStatusChanged implements interfaces.Notifier
func (s *Service) NotifyStatusChanged(ctx context.Context, bug *model.BugReport, previous types.BugStatus) error {
	_, ts, err := s.PostMessage(ctx,
		slack.MsgOptionText(fallbackText(bug), false),
		slack.MsgOptionBlocks(BuildStatusChangedBlocks(bug, previous)...),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to notify status change",
			goerr.V("bugID", bug.ID),
			goerr.V("previous", previous),
			goerr.V("current", bug.Status))
	}

	ctxlog.From(ctx).Debug("Bug status change notified", "bugID", bug.ID, "ts", ts)
	return nil
}

var _ interfaces.Notifier = (*Service)(nil)
