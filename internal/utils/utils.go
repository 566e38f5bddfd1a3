package utils

import (
	"fmt"
	"time"

	"githubWebhookMonitor/internal/model"
)

// FormatTimestamp renders a point in time as e.g.
// "1st April 2021 - 9:30 PM UTC". Always UTC.
func FormatTimestamp(t time.Time) string {
	t = t.UTC()
	day := t.Day()
	return fmt.Sprintf("%d%s %s %d - %s UTC",
		day, OrdinalSuffix(day), t.Month(), t.Year(), t.Format("3:04 PM"))
}

func OrdinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// FormatMessage renders the display line for one event. Formatting
// happens at query time so the stored rows never need migration.
func FormatMessage(e *model.Event) string {
	when := FormatTimestamp(e.Timestamp)
	switch e.Action {
	case model.ActionPush:
		return fmt.Sprintf("%s pushed to %s on %s", e.Author, e.ToBranch, when)
	case model.ActionPullRequest:
		return fmt.Sprintf("%s submitted a pull request from %s to %s on %s",
			e.Author, e.FromBranch, e.ToBranch, when)
	case model.ActionMerge:
		return fmt.Sprintf("%s merged branch %s to %s on %s",
			e.Author, e.FromBranch, e.ToBranch, when)
	default:
		return ""
	}
}
