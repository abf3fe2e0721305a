// Package jobs holds the background jobs run by the cron scheduler.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/dealerdesk/dealerdesk/internal/domain"
)

// Window widths of the nightly scan. The look-ahead matches the number of
// remaining days at which a warranty is reported as expiring soon; the
// look-back covers one scheduling interval so each expiry is reported once.
const (
	expiryLookAhead = 30 * 24 * time.Hour
	expiryLookBack  = 24 * time.Hour
)

// ExpiryScan counts warranties that are about to expire or have just
// expired and logs the totals. It only reads; notifications are left to
// whatever consumes the log stream.
type ExpiryScan struct {
	sales  domain.SaleRepository
	logger *slog.Logger
	now    func() time.Time
}

func NewExpiryScan(sales domain.SaleRepository, logger *slog.Logger) *ExpiryScan {
	if sales == nil {
		panic("jobs: sale repository is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ExpiryScan{sales: sales, logger: logger, now: time.Now}
}

// Run executes one scan. Errors are logged, not returned, so a failing
// scan never stops the scheduler.
func (j *ExpiryScan) Run(ctx context.Context) {
	now := j.now()

	expiring, err := j.sales.ListExpiringBetween(ctx, now, now.Add(expiryLookAhead))
	if err != nil {
		j.logger.ErrorContext(ctx, "warranty expiry scan failed", "stage", "expiring", "error", err)
		return
	}

	expired, err := j.sales.ListExpiringBetween(ctx, now.Add(-expiryLookBack), now)
	if err != nil {
		j.logger.ErrorContext(ctx, "warranty expiry scan failed", "stage", "expired", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "warranty expiry scan finished",
		"expiring_soon", len(expiring),
		"just_expired", len(expired),
		"scanned_at", now.Format(time.RFC3339),
	)
}
