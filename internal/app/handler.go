package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/tracker-tv/commit-sentinel/internal/orchestrator"
	"github.com/tracker-tv/commit-sentinel/internal/service"
	"github.com/tracker-tv/commit-sentinel/models"
)

// InspectHandler adapts a CodeCommit repository state change event to the
// inspection pipeline.
func InspectHandler(svc service.InspectionService) func(context.Context, events.CloudWatchEvent) error {
	return func(ctx context.Context, ev events.CloudWatchEvent) error {
		var commit models.CommitEvent
		if err := json.Unmarshal(ev.Detail, &commit); err != nil {
			return fmt.Errorf("%w: %w", service.ErrInvalidEvent, err)
		}
		_, err := svc.Inspect(ctx, commit)
		return err
	}
}

// RemediateHandler hands a security event delivered by the bus to the
// dispatcher.
func RemediateHandler(d *orchestrator.Dispatcher) func(context.Context, events.CloudWatchEvent) error {
	return func(ctx context.Context, ev events.CloudWatchEvent) error {
		return d.Dispatch(ctx, models.SecurityEvent{
			Source:     ev.Source,
			DetailType: ev.DetailType,
			Detail:     ev.Detail,
		})
	}
}
