package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/tracker-tv/commit-sentinel/internal/eventbus"
	"github.com/tracker-tv/commit-sentinel/internal/logger"
	"github.com/tracker-tv/commit-sentinel/internal/service"
	"github.com/tracker-tv/commit-sentinel/models"
)

// Dispatcher routes security events to the remediation actions.
type Dispatcher struct {
	detailType string
	actions    []service.Action
	log        logger.Logger
}

func NewDispatcher(detailType string, actions []service.Action, log logger.Logger) *Dispatcher {
	return &Dispatcher{detailType: detailType, actions: actions, log: logger.Named(log, "dispatcher")}
}

// Dispatch runs every action concurrently for the finding carried by ev and
// waits for all of them. Events of another detail type or from outside the
// security check sources are ignored.
func (d *Dispatcher) Dispatch(ctx context.Context, ev models.SecurityEvent) error {
	if ev.DetailType != d.detailType || !strings.HasPrefix(ev.Source, models.SecurityEventSourcePrefix) {
		d.log.Info().Str("detailType", ev.DetailType).Str("source", ev.Source).Msg("ignoring event")
		return nil
	}

	f, err := eventbus.Decode(ev)
	if err != nil {
		return err
	}

	log := d.log.With().Str("repository", f.RepositoryName).Str("commit", f.CommitID).Str("file", f.File).Logger()

	errs := make([]error, len(d.actions))
	var wg sync.WaitGroup
	for i, a := range d.actions {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := a.Execute(ctx, f); err != nil {
				log.Error().Err(err).Str("action", a.Name()).Msg("remediation failed")
				errs[i] = fmt.Errorf("%s: %w", a.Name(), err)
				return
			}
			log.Info().Str("action", a.Name()).Msg("remediation done")
		}()
	}
	wg.Wait()

	return errors.Join(errs...)
}
