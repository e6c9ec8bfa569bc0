package notify

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/johnadams78/capstoneproject/internal/inquiry"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// digestMaxLines caps how many inquiries a digest lists individually.
const digestMaxLines = 10

// cronParser uses standard 5-field cron expressions (minute, hour, dom, month, dow).
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// nextCronDuration parses a 5-field cron expression and returns the duration
// until the next fire time. Returns 0 on parse error.
func nextCronDuration(expr string) time.Duration {
	sched, err := cronParser.Parse(expr)
	if err != nil {
		return 0
	}
	next := sched.Next(time.Now())
	d := time.Until(next)
	if d < 0 {
		return 0
	}
	return d
}

// BuildDigest summarizes inquiries received since the cutoff. Returns nil
// when nothing came in, so quiet periods produce no message.
func BuildDigest(db *gorm.DB, dealerName string, since time.Time) (*Event, error) {
	count, err := inquiry.CountNewSince(db, since)
	if err != nil {
		return nil, fmt.Errorf("notify: digest: %w", err)
	}
	if count == 0 {
		return nil, nil
	}

	recent, err := inquiry.List(db, inquiry.ListFilters{Status: "new"})
	if err != nil {
		return nil, fmt.Errorf("notify: digest: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d new inquiries since %s\n", count, since.Format("Jan 2 15:04"))
	listed := 0
	for _, inq := range recent {
		if inq.CreatedAt.Before(since) {
			continue
		}
		if listed >= digestMaxLines {
			fmt.Fprintf(&b, "…and %d more\n", count-digestMaxLines)
			break
		}
		fmt.Fprintf(&b, "• %s (%s)\n", inq.CustomerName, inq.VehicleRef)
		listed++
	}

	return &Event{
		Title:     fmt.Sprintf("Inquiry digest for %s", dealerName),
		Body:      strings.TrimRight(b.String(), "\n"),
		Timestamp: time.Now(),
	}, nil
}

// RunDigest sends an inquiry digest on the given cron schedule until the
// context is cancelled. Delivery is best-effort: failures are logged, not
// returned, so a flaky chat API never takes the loop down.
func RunDigest(ctx context.Context, db *gorm.DB, n Notifier, dealerName, cronExpr string) error {
	if _, err := cronParser.Parse(cronExpr); err != nil {
		return fmt.Errorf("notify: invalid digest schedule %q: %w", cronExpr, err)
	}

	lastFire := time.Now()
	for {
		d := nextCronDuration(cronExpr)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(d):
		}

		ev, err := BuildDigest(db, dealerName, lastFire)
		lastFire = time.Now()
		if err != nil {
			log.Printf("notify: digest build failed: %v", err)
			continue
		}
		if ev == nil {
			continue
		}
		if err := n.Send(ctx, *ev); err != nil {
			log.Printf("notify: digest send failed: %v", err)
		}
	}
}
