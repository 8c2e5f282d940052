package domain

import "time"

// SyncStats holds statistics about one sync run.
type SyncStats struct {
	Attempted int
	Synced    int
	Failed    int
	Pruned    int64
	Duration  time.Duration
}
