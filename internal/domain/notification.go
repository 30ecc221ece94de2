package domain

// Severity selects how a notification is presented.
type Severity string

const (
	SeverityDefault     Severity = "default"
	SeverityDestructive Severity = "destructive"
)

// Represents a transient toast surfaced after an explicit user action.
type Notification struct {
	Title       string
	Description string
	Severity    Severity
}

// IsDestructive reports whether the notification signals a problem.
func (n Notification) IsDestructive() bool { return n.Severity == SeverityDestructive }
