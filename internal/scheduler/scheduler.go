package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/EventBackend/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type capacityAuditor interface {
	AuditOverbooked(ctx context.Context) ([]domain.CapacityUsage, error)
}

// Scheduler periodically looks for events whose bookings exceed their
// capacity. The service never produces such events, but capacity can be
// lowered directly in the store.
type Scheduler struct {
	auditor  capacityAuditor
	interval time.Duration
	logger   logger.Logger
}

func New(
	auditor capacityAuditor,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		auditor:  auditor,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	overbooked, err := s.auditor.AuditOverbooked(ctx)
	if err != nil {
		s.logger.Error("failed to audit capacity",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, u := range overbooked {
		s.logger.Warn("event overbooked",
			logger.String("event_id", u.EventID),
			logger.Int("capacity", u.Capacity),
			logger.Int("reserved", u.Reserved),
		)
	}
}
