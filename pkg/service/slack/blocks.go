package slack

import (
	"fmt"
	"strings"

	"github.com/secmon-lab/bugtrail/pkg/domain/model"
	"github.com/secmon-lab/bugtrail/pkg/domain/types"
	"github.com/slack-go/slack"
)

// Slack rejects section texts above 3000 characters
const maxSectionTextLength = 3000

// GetSeverityEmoji returns emoji based on severity level
func GetSeverityEmoji(severity types.Severity) string {
	switch severity {
	case types.SeverityCritical:
		return "🚨"
	case types.SeverityHigh:
		return "🔥"
	case types.SeverityMedium:
		return "⚠️"
	case types.SeverityLow:
		return "ℹ️"
	default:
		return "❓"
	}
}

// getStatusEmoji returns emoji based on bug status
func getStatusEmoji(status types.BugStatus) string {
	switch status {
	case types.BugStatusOpen:
		return "🔴"
	case types.BugStatusInProgress:
		return "🟠"
	case types.BugStatusResolved:
		return "🟢"
	case types.BugStatusClosed:
		return "⚪"
	default:
		return "❓"
	}
}

func formatSeverityText(severity types.Severity) string {
	return fmt.Sprintf("%s %s", GetSeverityEmoji(severity), severity)
}

func formatStatusText(status types.BugStatus) string {
	return fmt.Sprintf("%s %s", getStatusEmoji(status), status)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}

// bugFields builds the field grid shared by every bug message
func bugFields(bug *model.BugReport) []*slack.TextBlockObject {
	assignee := bug.Assignee
	if assignee == "" {
		assignee = "_unassigned_"
	}

	return []*slack.TextBlockObject{
		{
			Type: slack.MarkdownType,
			Text: "*Severity:*\n" + formatSeverityText(bug.Severity),
		},
		{
			Type: slack.MarkdownType,
			Text: "*Status:*\n" + formatStatusText(bug.Status),
		},
		{
			Type: slack.MarkdownType,
			Text: "*Reporter:*\n" + bug.Reporter,
		},
		{
			Type: slack.MarkdownType,
			Text: "*Assignee:*\n" + assignee,
		},
	}
}

// BuildBugCreatedBlocks builds the announcement for a newly reported bug
func BuildBugCreatedBlocks(bug *model.BugReport) []slack.Block {
	blocks := []slack.Block{
		&slack.HeaderBlock{
			Type: slack.MBTHeader,
			Text: &slack.TextBlockObject{
				Type: slack.PlainTextType,
				Text: truncate(GetSeverityEmoji(bug.Severity)+" "+bug.Title, 150),
			},
		},
		&slack.DividerBlock{
			Type: slack.MBTDivider,
		},
		&slack.SectionBlock{
			Type:   slack.MBTSection,
			Fields: bugFields(bug),
		},
	}

	if bug.Description != "" {
		blocks = append(blocks, &slack.SectionBlock{
			Type: slack.MBTSection,
			Text: &slack.TextBlockObject{
				Type: slack.MarkdownType,
				Text: truncate("*Description:*\n"+strings.ReplaceAll(bug.Description, "\n", " "), maxSectionTextLength),
			},
		})
	}

	blocks = append(blocks, buildContextBlock(bug))
	return blocks
}

// BuildStatusChangedBlocks builds the message for a status transition
func BuildStatusChangedBlocks(bug *model.BugReport, previous types.BugStatus) []slack.Block {
	return []slack.Block{
		slack.NewSectionBlock(
			slack.NewTextBlockObject(
				slack.MarkdownType,
				fmt.Sprintf("*%s*\nStatus changed: %s → %s",
					bug.Title, formatStatusText(previous), formatStatusText(bug.Status)),
				false,
				false,
			),
			nil,
			nil,
		),
		&slack.SectionBlock{
			Type:   slack.MBTSection,
			Fields: bugFields(bug),
		},
		buildContextBlock(bug),
	}
}

func buildContextBlock(bug *model.BugReport) *slack.ContextBlock {
	return slack.NewContextBlock(
		"",
		slack.NewTextBlockObject(
			slack.MarkdownType,
			fmt.Sprintf("Bug ID: `%s` | Updated: %s", bug.ID, bug.UpdatedAt.Format("2006-01-02 15:04 MST")),
			false,
			false,
		),
	)
}

// fallbackText is shown in notifications where blocks are not rendered
func fallbackText(bug *model.BugReport) string {
	return fmt.Sprintf("[%s] %s", bug.Severity, bug.Title)
}
