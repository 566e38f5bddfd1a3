package webhook

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"githubWebhookMonitor/internal/model"
)

var (
	ErrUnsupportedEvent = errors.New("unsupported event type")
	ErrMalformedPayload = errors.New("malformed payload")
)

const branchRefPrefix = "refs/heads/"

// Normalizer turns a raw delivery into a canonical event record.
// Now is injectable for tests; it defaults to time.Now.
type Normalizer struct {
	Now func() time.Time
}

func New() *Normalizer {
	return &Normalizer{Now: time.Now}
}

// Normalize decodes body according to eventType and returns the record
// to store, or ErrUnsupportedEvent / ErrMalformedPayload. Nothing is
// persisted here; the caller owns the save.
func (n *Normalizer) Normalize(eventType, deliveryID string, body []byte) (*model.Event, error) {
	receivedAt := n.Now().UTC()
	if deliveryID == "" {
		deliveryID = fmt.Sprintf("%d", receivedAt.UnixNano())
	}

	switch eventType {
	case "push":
		return normalizePush(deliveryID, body, receivedAt)
	case "pull_request":
		return normalizePullRequest(deliveryID, body, receivedAt)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEvent, eventType)
	}
}

func normalizePush(deliveryID string, body []byte, receivedAt time.Time) (*model.Event, error) {
	var p model.PushPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	branch, ok := strings.CutPrefix(p.Ref, branchRefPrefix)
	if !ok || branch == "" {
		return nil, fmt.Errorf("%w: ref %q is not a branch ref", ErrMalformedPayload, p.Ref)
	}
	if p.Pusher.Name == "" {
		return nil, fmt.Errorf("%w: missing pusher.name", ErrMalformedPayload)
	}
	return &model.Event{
		RequestID: deliveryID,
		Author:    p.Pusher.Name,
		Action:    model.ActionPush,
		ToBranch:  branch,
		Timestamp: receivedAt,
	}, nil
}

func normalizePullRequest(deliveryID string, body []byte, receivedAt time.Time) (*model.Event, error) {
	var p model.PullRequestPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	pr := p.PullRequest
	if pr.User.Login == "" || pr.Head.Ref == "" || pr.Base.Ref == "" {
		return nil, fmt.Errorf("%w: missing pull_request fields", ErrMalformedPayload)
	}

	e := &model.Event{
		RequestID:  deliveryID,
		Author:     pr.User.Login,
		Action:     model.ActionPullRequest,
		FromBranch: pr.Head.Ref,
		ToBranch:   pr.Base.Ref,
		Timestamp:  receivedAt,
	}
	if pr.Merged {
		e.Action = model.ActionMerge
		if pr.MergedBy.Login != "" {
			e.Author = pr.MergedBy.Login
		}
	}
	return e, nil
}
