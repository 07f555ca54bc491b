package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SimulatedSink fakes an order backend: it waits a fixed processing delay and
// then confirms the order. Used until a real fulfillment integration exists.
//
// The sink never fails on its own; the only error path is context
// cancellation while waiting.
type SimulatedSink struct {
	delay time.Duration
	now   func() time.Time
}

// NewSimulatedSink creates a simulated sink with the given processing delay.
func NewSimulatedSink(delay time.Duration) *SimulatedSink {
	return &SimulatedSink{
		delay: delay,
		now:   time.Now,
	}
}

// Submit waits the configured delay, then returns a confirmation.
func (s *SimulatedSink) Submit(ctx context.Context, sub Submission) (*Confirmation, error) {
	if len(sub.Items) == 0 {
		return nil, ErrNoItems
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	placedAt := s.now()

	return &Confirmation{
		OrderID:     uuid.New().String(),
		OrderNumber: orderNumber(placedAt),
		TotalPrice:  sub.TotalPrice,
		PlacedAt:    placedAt,
	}, nil
}

// orderNumber formats a display order number: "OMG" plus the last eight
// digits of the unix-millisecond timestamp.
func orderNumber(t time.Time) string {
	millis := fmt.Sprintf("%d", t.UnixMilli())
	if len(millis) > 8 {
		millis = millis[len(millis)-8:]
	}
	return "OMG" + millis
}
