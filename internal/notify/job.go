package notify

import (
	"github.com/riverqueue/river"
)

// AdminsJobArgs asks the worker to mail the configured admins.
type AdminsJobArgs struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Kind returns the River job kind used to register and dispatch the notification worker.
func (AdminsJobArgs) Kind() string { return "NotifyAdminsJob" }

// InsertOpts keeps notifications on the default queue with a few retries.
func (AdminsJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{MaxAttempts: 5}
}

// DailyReportJobArgs triggers the daily validation report.
type DailyReportJobArgs struct{}

// Kind returns the River job kind of the daily report.
func (DailyReportJobArgs) Kind() string { return "DailyReportJob" }
