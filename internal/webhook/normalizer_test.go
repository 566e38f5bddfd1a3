package webhook

import (
	"testing"
	"time"

	"githubWebhookMonitor/internal/model"

	"github.com/stretchr/testify/assert"
)

func fixedClock() *Normalizer {
	return &Normalizer{Now: func() time.Time {
		return time.Date(2025, time.January, 29, 10, 30, 0, 0, time.UTC)
	}}
}

func TestNormalize_Push(t *testing.T) {
	n := fixedClock()

	body := []byte(`{"pusher":{"name":"alice"},"ref":"refs/heads/main"}`)
	e, err := n.Normalize("push", "d-1", body)

	assert.NoError(t, err)
	assert.Equal(t, "alice", e.Author)
	assert.Equal(t, model.ActionPush, e.Action)
	assert.Equal(t, "main", e.ToBranch)
	assert.Empty(t, e.FromBranch)
	assert.Equal(t, "d-1", e.RequestID)
	assert.Equal(t, time.Date(2025, time.January, 29, 10, 30, 0, 0, time.UTC), e.Timestamp)
}

func TestNormalize_PushBranchWithSlash(t *testing.T) {
	n := fixedClock()

	body := []byte(`{"pusher":{"name":"bob"},"ref":"refs/heads/feature/login"}`)
	e, err := n.Normalize("push", "d-2", body)

	assert.NoError(t, err)
	assert.Equal(t, "feature/login", e.ToBranch)
}

func TestNormalize_PullRequest(t *testing.T) {
	n := fixedClock()

	body := []byte(`{
		"action": "opened",
		"pull_request": {
			"merged": false,
			"user": {"login": "jane"},
			"head": {"ref": "feature/login"},
			"base": {"ref": "main"}
		}
	}`)
	e, err := n.Normalize("pull_request", "d-3", body)

	assert.NoError(t, err)
	assert.Equal(t, "jane", e.Author)
	assert.Equal(t, model.ActionPullRequest, e.Action)
	assert.Equal(t, "feature/login", e.FromBranch)
	assert.Equal(t, "main", e.ToBranch)
}

func TestNormalize_Merge(t *testing.T) {
	n := fixedClock()

	body := []byte(`{
		"action": "closed",
		"pull_request": {
			"merged": true,
			"user": {"login": "jane"},
			"merged_by": {"login": "maintainer"},
			"head": {"ref": "feature/login"},
			"base": {"ref": "main"}
		}
	}`)
	e, err := n.Normalize("pull_request", "d-4", body)

	assert.NoError(t, err)
	assert.Equal(t, model.ActionMerge, e.Action)
	assert.Equal(t, "maintainer", e.Author)
	assert.Equal(t, "feature/login", e.FromBranch)
	assert.Equal(t, "main", e.ToBranch)
}

func TestNormalize_MergeWithoutMergedBy(t *testing.T) {
	n := fixedClock()

	body := []byte(`{
		"pull_request": {
			"merged": true,
			"user": {"login": "jane"},
			"head": {"ref": "fix"},
			"base": {"ref": "main"}
		}
	}`)
	e, err := n.Normalize("pull_request", "d-5", body)

	assert.NoError(t, err)
	assert.Equal(t, model.ActionMerge, e.Action)
	assert.Equal(t, "jane", e.Author)
}

func TestNormalize_UnsupportedEvent(t *testing.T) {
	n := fixedClock()

	e, err := n.Normalize("issues", "d-6", []byte(`{"action":"opened"}`))

	assert.Nil(t, e)
	assert.ErrorIs(t, err, ErrUnsupportedEvent)
}

func TestNormalize_MalformedPayloads(t *testing.T) {
	n := fixedClock()

	cases := []struct {
		name      string
		eventType string
		body      string
	}{
		{"push invalid json", "push", `{not json`},
		{"push missing pusher", "push", `{"ref":"refs/heads/main"}`},
		{"push non-branch ref", "push", `{"pusher":{"name":"alice"},"ref":"refs/tags/v1.0"}`},
		{"push missing ref", "push", `{"pusher":{"name":"alice"}}`},
		{"pr missing user", "pull_request", `{"pull_request":{"head":{"ref":"a"},"base":{"ref":"b"}}}`},
		{"pr missing head", "pull_request", `{"pull_request":{"user":{"login":"jane"},"base":{"ref":"b"}}}`},
		{"pr missing base", "pull_request", `{"pull_request":{"user":{"login":"jane"},"head":{"ref":"a"}}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, err := n.Normalize(tc.eventType, "d", []byte(tc.body))
			assert.Nil(t, e)
			assert.ErrorIs(t, err, ErrMalformedPayload)
		})
	}
}

func TestNormalize_GeneratesRequestIDWhenMissing(t *testing.T) {
	n := fixedClock()

	body := []byte(`{"pusher":{"name":"alice"},"ref":"refs/heads/main"}`)
	e, err := n.Normalize("push", "", body)

	assert.NoError(t, err)
	assert.NotEmpty(t, e.RequestID)
}
