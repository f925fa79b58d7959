package request

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// RequestCreatedArgs contains the arguments for a provider notification job.
// The request ID is the unique key so a request never fans out twice.
type RequestCreatedArgs struct {
	// RequestID identifies the freshly filed service request. It is marked
	// unique so River enforces one notification job per request.
	RequestID string `json:"requestId" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
	// uniqueJobPeriod defines the lookback window during which a job with the
	// same arguments is considered a duplicate across the specified states.
	uniqueJobPeriod time.Duration
}

// Kind returns the River job kind used to register and dispatch the notification worker.
func (args RequestCreatedArgs) Kind() string { return "RequestCreatedMailJob" }

// InsertOpts returns the River options that control how the job is enqueued,
// including the maximum retry attempts and uniqueness constraints to prevent
// duplicate notifications for the same request across multiple job states.
func (args RequestCreatedArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		// make sure we only have one notification job per request in any state
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniqueJobPeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
