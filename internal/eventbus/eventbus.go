// Package eventbus publishes findings as security events.
package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tracker-tv/commit-sentinel/models"
)

var ErrPartialPublish = errors.New("event bus rejected entries")

// Publisher submits all findings of one inspection in a single call.
type Publisher interface {
	Publish(ctx context.Context, findings []models.Finding) error
}

// Entry wraps a finding in the bus envelope.
func Entry(source, detailType string, f models.Finding) (models.SecurityEvent, error) {
	detail, err := json.Marshal(f)
	if err != nil {
		return models.SecurityEvent{}, fmt.Errorf("encoding finding for %s: %w", f.File, err)
	}
	return models.SecurityEvent{Source: source, DetailType: detailType, Detail: detail}, nil
}

// Decode unwraps the finding carried by a security event.
func Decode(ev models.SecurityEvent) (models.Finding, error) {
	if !strings.HasPrefix(ev.Source, models.SecurityEventSourcePrefix) {
		return models.Finding{}, fmt.Errorf("unexpected event source %q", ev.Source)
	}
	var f models.Finding
	if err := json.Unmarshal(ev.Detail, &f); err != nil {
		return models.Finding{}, fmt.Errorf("decoding finding: %w", err)
	}
	return f, nil
}
