// Package schedule runs the recurring report cycle: once per minute every
// venue's report deadline is matched against the wall clock, and venues
// whose minute has come get their pending orders aggregated, queued for
// delivery to managers, and cleared.
package schedule

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/corpeats/lunchbot/internal/deadline"
	"github.com/corpeats/lunchbot/internal/kafka"
	"github.com/corpeats/lunchbot/internal/metrics"
	"github.com/corpeats/lunchbot/internal/report"
	"github.com/corpeats/lunchbot/internal/storage"
)

type VenueSource interface {
	ListVenues(ctx context.Context, activeOnly bool) ([]storage.Venue, error)
}

type OrderFlusher interface {
	FlushVenue(ctx context.Context, venueID int64, topic string, compose func([]storage.Order) ([][]byte, error)) (int, error)
}

type Roster interface {
	Managers() []int64
	EmployeeName(id int64) string
}

type Reporter struct {
	venues VenueSource
	orders OrderFlusher
	roster Roster
	tz     *time.Location
	topic  string
	logger *zap.Logger
	now    func() time.Time

	wg             sync.WaitGroup
	shutdownSignal chan struct{}
	stopOnce       sync.Once
}

func NewReporter(venues VenueSource, orders OrderFlusher, roster Roster, tz *time.Location, topic string, logger *zap.Logger) *Reporter {
	return &Reporter{
		venues:         venues,
		orders:         orders,
		roster:         roster,
		tz:             tz,
		topic:          topic,
		logger:         logger,
		now:            time.Now,
		shutdownSignal: make(chan struct{}),
	}
}

// Run ticks once per minute, aligned to wall-clock minute boundaries. A
// tick that is missed (process paused across a boundary) is not caught up:
// matching is exact, and firing late would report totals the deadline
// already closed over.
func (r *Reporter) Run(ctx context.Context) {
	r.logger.Info("starting report cycle", zap.String("tz", r.tz.String()))
	r.wg.Add(1)
	defer r.wg.Done()

	// sleep to the next minute boundary so the ticker stays aligned
	first := time.NewTimer(r.untilNextMinute())
	defer first.Stop()
	select {
	case <-first.C:
	case <-r.shutdownSignal:
		return
	case <-ctx.Done():
		r.signalStop()
		return
	}
	r.tick(ctx)

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.tick(ctx)
		case <-r.shutdownSignal:
			r.logger.Info("report cycle received shutdown signal, stopping")
			return
		case <-ctx.Done():
			r.logger.Info("report cycle context cancelled, stopping")
			r.signalStop()
			return
		}
	}
}

// signalStop is safe to call from inside the Run goroutine; Shutdown is
// not, since it waits for Run to exit.
func (r *Reporter) signalStop() {
	r.stopOnce.Do(func() {
		close(r.shutdownSignal)
	})
}

func (r *Reporter) Shutdown() {
	r.signalStop()
	r.wg.Wait()
}

func (r *Reporter) untilNextMinute() time.Duration {
	now := r.now()
	return now.Truncate(time.Minute).Add(time.Minute).Sub(now)
}

// tick checks every venue, inactive ones included: a deactivated venue may
// still hold orders placed before deactivation and those must flush. One
// venue failing never cancels the rest of the tick.
func (r *Reporter) tick(ctx context.Context) {
	nowHHMM := r.now().In(r.tz).Format("15:04")
	r.logger.Debug("report tick", zap.String("now", nowHHMM))

	venues, err := r.venues.ListVenues(ctx, false)
	if err != nil {
		metrics.ReportTickErrorsTotal.WithLabelValues("list_venues").Inc()
		r.logger.Error("failed to list venues for report tick", zap.Error(err))
		return
	}

	for _, venue := range venues {
		cutoff := strings.TrimSpace(venue.ReportDeadline)
		if cutoff == "" {
			continue
		}
		if !deadline.Valid(cutoff) {
			metrics.ReportTickErrorsTotal.WithLabelValues("malformed_deadline").Inc()
			r.logger.Warn("skipping venue with malformed report deadline",
				zap.Int64("venue_id", venue.ID), zap.String("deadline", venue.ReportDeadline))
			continue
		}
		if cutoff != nowHHMM {
			continue
		}

		r.logger.Info("report deadline matched",
			zap.Int64("venue_id", venue.ID), zap.String("time", nowHHMM))
		if err := r.fire(ctx, venue); err != nil {
			metrics.ReportTickErrorsTotal.WithLabelValues("venue_failed").Inc()
			r.logger.Error("failed to report venue",
				zap.Int64("venue_id", venue.ID), zap.Error(err))
		}
	}
}

// fire aggregates and clears one venue. The report text is composed inside
// the flush transaction so the cleared orders are exactly the reported
// ones. A venue with zero pending orders sends nothing and clears nothing.
func (r *Reporter) fire(ctx context.Context, venue storage.Venue) error {
	compose := func(orders []storage.Order) ([][]byte, error) {
		text := report.Build(venue.Name, orders, r.roster.EmployeeName)

		managers := r.roster.Managers()
		if len(managers) == 0 {
			r.logger.Warn("no managers to deliver report to", zap.Int64("venue_id", venue.ID))
			return nil, nil
		}

		payloads := make([][]byte, 0, len(managers))
		for _, managerID := range managers {
			payload, err := json.Marshal(kafka.OutboundMessage{ChatID: managerID, Text: text})
			if err != nil {
				return nil, err
			}
			payloads = append(payloads, payload)
		}
		return payloads, nil
	}

	cleared, err := r.orders.FlushVenue(ctx, venue.ID, r.topic, compose)
	if err != nil {
		return err
	}
	if cleared == 0 {
		r.logger.Info("no orders for venue, skipping report", zap.Int64("venue_id", venue.ID))
		return nil
	}

	metrics.ReportsGeneratedTotal.Inc()
	r.logger.Info("venue reported and cleared",
		zap.Int64("venue_id", venue.ID), zap.Int("orders", cleared))
	return nil
}
