package eventbus

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"github.com/tracker-tv/commit-sentinel/models"
)

// maxEntriesPerCall is the PutEvents limit.
const maxEntriesPerCall = 10

type EventBridgeAPI interface {
	PutEvents(ctx context.Context, params *eventbridge.PutEventsInput, optFns ...func(*eventbridge.Options)) (*eventbridge.PutEventsOutput, error)
}

type eventBridgePublisher struct {
	api        EventBridgeAPI
	busName    string
	source     string
	detailType string
}

func NewEventBridge(api EventBridgeAPI, busName, source, detailType string) Publisher {
	return &eventBridgePublisher{
		api:        api,
		busName:    busName,
		source:     source,
		detailType: detailType,
	}
}

func (p *eventBridgePublisher) Publish(ctx context.Context, findings []models.Finding) error {
	entries := make([]types.PutEventsRequestEntry, 0, len(findings))
	for _, f := range findings {
		ev, err := Entry(p.source, p.detailType, f)
		if err != nil {
			return err
		}
		entries = append(entries, types.PutEventsRequestEntry{
			EventBusName: aws.String(p.busName),
			Source:       aws.String(ev.Source),
			DetailType:   aws.String(ev.DetailType),
			Detail:       aws.String(string(ev.Detail)),
		})
	}

	for start := 0; start < len(entries); start += maxEntriesPerCall {
		end := min(start+maxEntriesPerCall, len(entries))

		out, err := p.api.PutEvents(ctx, &eventbridge.PutEventsInput{Entries: entries[start:end]})
		if err != nil {
			return fmt.Errorf("putting events: %w", err)
		}
		if out.FailedEntryCount > 0 {
			return fmt.Errorf("%w: %d of %d: %s", ErrPartialPublish, out.FailedEntryCount, end-start, failureCodes(out.Entries))
		}
	}

	return nil
}

func failureCodes(results []types.PutEventsResultEntry) string {
	var codes []string
	for _, r := range results {
		if r.ErrorCode != nil {
			codes = append(codes, aws.ToString(r.ErrorCode))
		}
	}
	return strings.Join(codes, ",")
}
