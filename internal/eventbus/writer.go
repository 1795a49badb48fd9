package eventbus

import (
	"context"
	"encoding/json"
	"io"
	"sync"

	"github.com/tracker-tv/commit-sentinel/models"
)

type writerPublisher struct {
	mu         sync.Mutex
	enc        *json.Encoder
	source     string
	detailType string
}

// NewWriter returns a Publisher that writes each entry as one JSON line to w.
// The output can be replayed through the remediation dispatcher.
func NewWriter(w io.Writer, source, detailType string) Publisher {
	return &writerPublisher{enc: json.NewEncoder(w), source: source, detailType: detailType}
}

func (p *writerPublisher) Publish(_ context.Context, findings []models.Finding) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, f := range findings {
		ev, err := Entry(p.source, p.detailType, f)
		if err != nil {
			return err
		}
		if err := p.enc.Encode(ev); err != nil {
			return err
		}
	}
	return nil
}
