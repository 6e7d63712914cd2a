package audit

import "time"

// Record is one tool invocation as seen by the audit log.
type Record struct {
	ID         string `gorm:"primaryKey"`
	Tool       string
	Host       string
	User       string
	Command    string
	ExitCode   int
	Success    bool
	Error      string
	DurationMs int64
	CreatedAt  time.Time
}
