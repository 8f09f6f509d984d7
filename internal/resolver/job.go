package resolver

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// InvalidateJobArgs carries cache keys whose deletion failed after a
// committed mutation. The worker keeps deleting them until it succeeds.
type InvalidateJobArgs struct {
	Keys []string `json:"keys" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the invalidation worker.
func (args InvalidateJobArgs) Kind() string { return "InvalidateCacheJob" }

// InsertOpts returns the River options of an invalidation job. Jobs with the
// same keys are merged while one is still queued or running.
func (args InvalidateJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRetryable,
				rivertype.JobStateRunning,
				rivertype.JobStateScheduled,
			},
		},
	}
}

// NewInvalidateJobArgs builds job arguments retried at most maxAttempts times.
func NewInvalidateJobArgs(keys []string, maxAttempts int) InvalidateJobArgs {
	return InvalidateJobArgs{Keys: keys, maxAttempts: maxAttempts}
}
