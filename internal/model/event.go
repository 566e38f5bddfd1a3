package model

import "time"

const (
	ActionPush        = "push"
	ActionPullRequest = "pull_request"
	ActionMerge       = "merge"
)

// Event is the canonical stored record. FromBranch is empty for pushes.
type Event struct {
	RequestID  string    `json:"request_id"`
	Author     string    `json:"author"`
	Action     string    `json:"action"`
	FromBranch string    `json:"from_branch"`
	ToBranch   string    `json:"to_branch"`
	Timestamp  time.Time `json:"timestamp"`
}

// FormattedEvent is what /api/events returns per record.
type FormattedEvent struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// PushPayload covers the fields we read from GitHub's push delivery.
type PushPayload struct {
	Ref    string `json:"ref"`
	Pusher struct {
		Name string `json:"name"`
	} `json:"pusher"`
}

// PullRequestPayload covers GitHub's pull_request delivery.
type PullRequestPayload struct {
	Action      string `json:"action"`
	PullRequest struct {
		Merged bool `json:"merged"`
		User   struct {
			Login string `json:"login"`
		} `json:"user"`
		MergedBy struct {
			Login string `json:"login"`
		} `json:"merged_by"`
		Head struct {
			Ref string `json:"ref"`
		} `json:"head"`
		Base struct {
			Ref string `json:"ref"`
		} `json:"base"`
	} `json:"pull_request"`
}
