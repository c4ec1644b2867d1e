// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import "context"

// Notifier delivers a human-readable message to a user. Delivery is
// best-effort: a single attempt, no retries. Callers on the ledger write path
// must never let a notification failure reach their own caller.
type Notifier interface {
	Notify(ctx context.Context, userID int64, text string) error
}
