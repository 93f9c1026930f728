package workers

import "context"

// Job describes one unit of work: a typed argument plus the function that
// turns it into a typed result.
type Job[T any] struct {
	Description JobDescriptor
	ExecFn      ExecutionFn[T]
	Args        T
}

// ExecutionFn is the function a Job runs.
type ExecutionFn[T any] func(ctx context.Context, args T) (T, error)

// JobID identifies a job for correlating its Result back to its submitter.
type JobID string

// JobKind classifies a job for logging and metrics.
type JobKind string

// JobMetadata carries arbitrary caller-supplied context alongside a job.
type JobMetadata map[string]interface{}

// JobDescriptor is the caller-facing identity of a job, threaded through
// to its Result regardless of success or failure.
type JobDescriptor struct {
	ID       JobID
	Kind     JobKind
	Metadata JobMetadata
}

// Result is what a Job produces: either a Value or an Err, always tagged
// with the originating Description.
type Result[T any] struct {
	Value       T
	Err         error
	Description JobDescriptor
}

func (j Job[T]) execute(ctx context.Context) Result[T] {
	value, err := j.ExecFn(ctx, j.Args)
	if err != nil {
		return Result[T]{
			Err:         err,
			Description: j.Description,
		}
	}

	return Result[T]{
		Value:       value,
		Description: j.Description,
	}
}
