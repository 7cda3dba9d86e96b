package export

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-frontdesk/internal/timezone"
)

const exportTimeout = 2 * time.Minute

// Scheduler runs the closure export on a cron schedule.
type Scheduler struct {
	cron     *cron.Cron
	exporter *ClosureExporter
	now      timezone.Clock
	log      *zap.Logger
}

func NewScheduler(
	spec string,
	loc *time.Location,
	exporter *ClosureExporter,
	now timezone.Clock,
	log *zap.Logger,
) (*Scheduler, error) {

	s := &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		exporter: exporter,
		now:      now,
		log:      log,
	}

	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, fmt.Errorf("invalid export schedule %q: %w", spec, err)
	}
	return s, nil
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
	defer cancel()

	if _, err := s.exporter.Export(ctx, s.now()); err != nil {
		s.log.Error("financial closure export failed", zap.Error(err))
	}
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for a running export to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
