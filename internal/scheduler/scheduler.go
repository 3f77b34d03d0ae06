// Package scheduler runs the periodic portfolio valuation refresh.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/marketdesk/paper-trading-backend/internal/market"
	"github.com/marketdesk/paper-trading-backend/internal/service"
)

// refreshTimeout bounds a single refresh run so a stalled provider
// cannot pile up overlapping jobs.
const refreshTimeout = 30 * time.Second

// Scheduler refreshes holding valuations on a cron schedule.
type Scheduler struct {
	cron      *cron.Cron
	portfolio *service.PortfolioService
	now       func() time.Time
}

// New creates a scheduler that refreshes the portfolio on the given cron
// spec (e.g. "@every 1m").
func New(portfolio *service.PortfolioService, spec string) (*Scheduler, error) {
	s := &Scheduler{
		cron:      cron.New(),
		portfolio: portfolio,
		now:       time.Now,
	}
	if _, err := s.cron.AddFunc(spec, s.refresh); err != nil {
		return nil, err
	}
	return s, nil
}

// Start begins running scheduled refreshes in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the schedule and waits for an in-flight refresh to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) refresh() {
	if !s.shouldRefresh() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	if err := s.portfolio.RefreshFromMarket(ctx); err != nil {
		log.Printf("scheduler: valuation refresh failed: %v", err)
	}
}

// shouldRefresh reports whether any held symbol currently trades. Crypto
// trades around the clock; stocks only during exchange hours.
func (s *Scheduler) shouldRefresh() bool {
	state := s.portfolio.GetState()
	if len(state.Holdings) == 0 {
		return false
	}
	for _, h := range state.Holdings {
		if market.IsCryptoSymbol(h.Symbol) {
			return true
		}
	}
	return market.IsStockMarketOpen(s.now())
}
