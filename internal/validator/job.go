package validator

import (
	"github.com/google/uuid"
	"github.com/riverqueue/river"
)

// QueueValidation is the River queue validation jobs run on. Its worker count
// matches the number of validation modules.
const QueueValidation = "validation"

// FileJobArgs asks the worker to validate an uploaded file.
type FileJobArgs struct {
	ValidationID uuid.UUID `json:"validation_id"`

	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the file worker.
func (FileJobArgs) Kind() string { return "ValidateFileJob" }

// InsertOpts puts the job on the validation queue.
func (args FileJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{MaxAttempts: args.maxAttempts, Queue: QueueValidation}
}

// CounterAPIJobArgs asks the worker to validate a COUNTER API endpoint.
type CounterAPIJobArgs struct {
	ValidationID uuid.UUID `json:"validation_id"`

	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the COUNTER API worker.
func (CounterAPIJobArgs) Kind() string { return "ValidateCounterAPIJob" }

// InsertOpts puts the job on the validation queue.
func (args CounterAPIJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{MaxAttempts: args.maxAttempts, Queue: QueueValidation}
}

// CleanupJobArgs triggers removal of expired validations.
type CleanupJobArgs struct{}

// Kind returns the River job kind of the cleanup.
func (CleanupJobArgs) Kind() string { return "CleanupExpiredJob" }
