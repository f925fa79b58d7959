package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"carmate/pkg/logger"
	"carmate/pkg/mailer"

	"go.uber.org/zap"
)

// MailGate provides cooperative rate limiting for outbound mail. All
// notification workers share one gate so their combined concurrency never
// exceeds the mail provider's budget.
//
// # Rate limiting overview
//
// The gate tracks the last known provider rate-limit status (lastRLStatus) and
// the number of deliveries currently in flight (inFlightRequests). Before a
// worker sends mail, Reserve is called to take a slot from the current budget.
// The effective remaining budget is computed as:
//
//	remaining := lastRLStatus.Remaining
//	if now > lastRLStatus.ResetAt { remaining = lastRLStatus.Limit }
//
// A delivery may start if remaining - inFlightRequests > 0. This allows
// multiple concurrent deliveries as long as they stay within the Remaining
// budget. When no budget is left, Reserve waits until either:
//   - the ResetAt time is reached (budget replenishes to Limit), or
//   - another in-flight delivery finishes and signals requestFinishedChan.
//
// After a delivery completes, Finished is called with the provider-reported
// mailer.RateLimitStatus from the response headers. It decrements the
// inFlightRequests counter, wakes any goroutines waiting in Reserve via
// requestFinishedChan (non-blocking), and updates lastRLStatus. The update
// strategy prefers the freshest ResetAt and the lowest Remaining to avoid
// optimistic races when concurrent deliveries report slightly different views
// of the budget. If ResetAt changes, it is always adopted. Otherwise Remaining
// is only replaced when it decreases, which is conservative and prevents
// overuse.
//
// Bootstrap behavior: before any call has returned real headers, lastRLStatus
// is initialized to a synthetic status with Limit=1, Remaining=1 and a
// far-future ResetAt. This lets exactly one delivery through so real headers
// can be observed; subsequent deliveries use actual data.
//
// Concurrency safety: all mutable state is guarded by mu. requestFinishedChan
// carries wake-up signals without accumulating backpressure; sends are
// non-blocking and dropped when nobody is waiting.
type MailGate struct {
	// mu protects all fields below it: inFlightRequests and lastRLStatus.
	mu sync.Mutex
	// inFlightRequests counts how many deliveries are currently running. It is
	// used with lastRLStatus.Remaining to decide if another delivery may start.
	inFlightRequests int
	// lastRLStatus stores the most recent view of the provider rate-limit
	// headers. It is updated after each delivery, preferring newer ResetAt and
	// lower Remaining to avoid optimistic races between concurrent deliveries.
	lastRLStatus *mailer.RateLimitStatus
	// requestFinishedChan is a non-buffered notification channel used to wake
	// up goroutines waiting in Reserve when any in-flight delivery completes.
	requestFinishedChan chan struct{}
}

// NewMailGate constructs an empty gate. Share a single instance across all
// workers that talk to the same mail provider.
func NewMailGate() *MailGate {
	return &MailGate{
		requestFinishedChan: make(chan struct{}),
	}
}

// Reserve reserves one unit from the rate-limit budget or blocks until a unit
// becomes available:
//  1. On first use, initialize a synthetic RL state to allow a single probe
//     delivery to gather real headers.
//  2. Compute effective remaining budget; if we've passed ResetAt, Remaining
//     is treated as Limit.
//  3. If remaining - inFlightRequests > 0, increment inFlightRequests and
//     return.
//  4. Otherwise, wait until either ResetAt elapses or any in-flight delivery
//     completes (signaled via requestFinishedChan), then retry.
//
// If ctx is canceled while waiting, an error is returned.
func (g *MailGate) Reserve(ctx context.Context) error {
	for {
		g.mu.Lock()

		if g.lastRLStatus == nil {
			// At startup allow one delivery to get feedback from the provider.
			g.lastRLStatus = &mailer.RateLimitStatus{
				Limit:     1,
				Remaining: 1,
				// Far-future reset so the first reservation doesn't unblock due
				// to a timer; real headers will replace this soon.
				ResetAt: time.Now().Add(365 * 24 * time.Hour),
			}
		}

		remaining := g.lastRLStatus.Remaining
		// If the reset time has passed, treat the full limit as remaining.
		if time.Now().UTC().After(g.lastRLStatus.ResetAt) {
			remaining = g.lastRLStatus.Limit
		}

		// If budget remains once we account for in-flight deliveries, reserve and go.
		if remaining-g.inFlightRequests > 0 {
			logger.Debug(ctx, "reserved mail rate limit slot",
				zap.Int("remaining", remaining),
				zap.Int("limit", g.lastRLStatus.Limit),
				zap.Time("resetAt", g.lastRLStatus.ResetAt),
				zap.Int("inFlight", g.inFlightRequests))
			g.inFlightRequests++
			g.mu.Unlock()

			return nil
		}

		// Otherwise, wait for either the reset time (if in the future) or for
		// any delivery to finish, then retry.
		resetAt := g.lastRLStatus.ResetAt
		g.mu.Unlock()

		logger.Debug(ctx, "waiting for mail rate limit slot",
			zap.Int("remaining", remaining),
			zap.Time("resetAt", resetAt),
			zap.Int("inFlight", g.inFlightRequests))

		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for rate limit: %w", ctx.Err())
		case <-g.requestFinishedChan:
			// loop to re-evaluate
			continue
		case <-time.After(time.Until(resetAt)):
			// Reset window elapsed; loop and try again.
			continue
		}
	}
}

// Finished is called after every delivery attempt. It decrements the
// in-flight counter, notifies any goroutines waiting in Reserve, and updates
// the last known rate-limit status using a conservative merge strategy to
// avoid races between concurrent deliveries.
func (g *MailGate) Finished(ctx context.Context, newRLStatus mailer.RateLimitStatus) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.inFlightRequests > 0 {
		g.inFlightRequests--
	} else {
		g.inFlightRequests = 0
	}

	// If other goroutines are blocked in Reserve, try to wake exactly one
	// without blocking this goroutine. If no one is waiting, the signal is
	// dropped.
	select {
	case g.requestFinishedChan <- struct{}{}:
	default:
	}

	// If the call didn't return any RL info, don't change our view.
	if newRLStatus.ResetAt.IsZero() {
		return
	}

	log := func() {
		logger.Debug(ctx, "received mail rate limit status",
			zap.Int("limit", newRLStatus.Limit),
			zap.Int("remaining", newRLStatus.Remaining),
			zap.Time("resetAt", newRLStatus.ResetAt),
			zap.Int("inFlight", g.inFlightRequests))
	}

	// First observation: adopt it unconditionally.
	if g.lastRLStatus == nil {
		g.lastRLStatus = &newRLStatus
		log()

		return
	}

	// If ResetAt changed, always adopt the new window.
	if !g.lastRLStatus.ResetAt.Equal(newRLStatus.ResetAt) {
		g.lastRLStatus = &newRLStatus
		log()

		return
	}

	// Otherwise prefer the lower Remaining to stay conservative under concurrency.
	if newRLStatus.Remaining < g.lastRLStatus.Remaining {
		g.lastRLStatus = &newRLStatus
		log()
	}
}
