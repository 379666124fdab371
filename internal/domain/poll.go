package domain

import "time"

// PollStats holds statistics about a single subscription poll cycle.
type PollStats struct {
	SubscriptionID int64
	Fetched        int
	New            int
	Updated        int
	Errors         int
	// position of the first item that failed to ingest, -1 when all
	// items were processed; the cursor never advances past it
	FirstFailed int
	Duration    time.Duration
}
