package domain

import "context"

// EventStore remembers which webhook events were already handled.
type EventStore interface {
	// MarkProcessed records the event and reports whether it was seen for the
	// first time.
	MarkProcessed(ctx context.Context, eventID string) (bool, error)

	// Release forgets the event so that its next delivery is handled again.
	Release(ctx context.Context, eventID string) error
}
