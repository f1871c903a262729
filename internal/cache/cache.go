// Package cache holds computed alert payloads between requests.
//
// Entries are keyed by the request parameters plus the ISO week they were
// computed in, so a payload never survives into the next week. Any mutation
// of resources, allocations or settings must call Invalidate.
package cache

import (
	"context"
	"strings"
	"time"

	"github.com/gti/resource-planner/internal/utilization"
)

// PayloadCache stores alert payloads by key.
//
// A payload must be stored with the generation read before its inputs were
// loaded, so one computed from data that a concurrent mutation has since
// replaced is never cached.
type PayloadCache interface {
	// Generation identifies the current cache state. Invalidate advances it.
	Generation(ctx context.Context) (int64, error)
	// Get returns the cached payload for key. ok is false on a miss.
	Get(ctx context.Context, key string) (payload utilization.AlertPayload, ok bool, err error)
	// Set stores payload unless the generation has moved past gen.
	Set(ctx context.Context, key string, gen int64, payload utilization.AlertPayload) error
	// Invalidate drops every entry.
	Invalidate(ctx context.Context) error
}

// Key builds the cache key for an alert request made at now.
func Key(department, startDate, endDate string, now time.Time) string {
	if department == "" {
		department = "all"
	}
	return strings.Join([]string{
		strings.ToLower(department),
		startDate,
		endDate,
		utilization.WeekKeyOf(now).String(),
	}, "|")
}
