package quote

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// QuoteAcceptedArgs contains the arguments for the acceptance mail sent to
// the winning provider.
type QuoteAcceptedArgs struct {
	// QuoteID identifies the accepted quote. It is marked unique so River
	// enforces one acceptance mail per quote.
	QuoteID string `json:"quoteId" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
	// uniqueJobPeriod defines the lookback window during which a job with the
	// same arguments is considered a duplicate across the specified states.
	uniqueJobPeriod time.Duration
}

// Kind returns the River job kind used to register and dispatch the acceptance mail worker.
func (args QuoteAcceptedArgs) Kind() string { return "QuoteAcceptedMailJob" }

// InsertOpts returns the River options that control how the job is enqueued,
// including the maximum retry attempts and uniqueness constraints to prevent
// duplicate mail for the same quote across multiple job states.
func (args QuoteAcceptedArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		// make sure we only have one acceptance mail per quote in any state
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
