package domain

import "time"

const ConsoleLogCapacity = 50

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarn    Severity = "warn"
	SeverityError   Severity = "error"
	SeveritySuccess Severity = "success"
)

type LogEntry struct {
	ID        string
	Timestamp time.Time
	Level     Severity
	Message   string
}
