// Package item defines the records the browser displays and the source
// interfaces that supply them. Sources are injected so the engine never
// touches a repository or chat store directly.
package item

import (
	"time"

	"github.com/google/uuid"
)

// Role labels who produced a chat message.
type Role string

const (
	RoleUser      Role = "User"
	RoleAssistant Role = "Assistant"
	RoleSystem    Role = "System"
)

// Commit is one entry in the commit column.
type Commit struct {
	SHA     string // abbreviated, what the list shows
	FullSHA string
	Subject string
	Author  string
	Time    time.Time
	HasNote bool // a chat transcript is attached
}

// Message is one chat message tied to a working session.
type Message struct {
	Role      Role
	Content   string
	Time      time.Time
	SessionID uuid.UUID
}

// LogEntry is one discovered session log file.
type LogEntry struct {
	ID       uuid.UUID
	URI      string
	Provider string
	Modified time.Time
}

// CommitSource lists commits newest first.
type CommitSource interface {
	Commits(limit int) ([]Commit, error)
}

// MessageSource lists the messages of one session log, oldest first.
type MessageSource interface {
	Messages(id uuid.UUID) ([]Message, error)
}

// LogSource lists available session logs, newest first.
type LogSource interface {
	Logs() ([]LogEntry, error)
}

// DetailSource returns the pre-formatted detail lines for a commit, in
// `git show --stat` shape.
type DetailSource interface {
	Details(fullSHA string) ([]string, error)
}

// NoteSource returns the stored chat transcript for a commit, or nil when
// none is attached.
type NoteSource interface {
	Note(fullSHA string) ([]Message, error)
}

// ErrorMessage wraps a source failure as a system chat message so panes
// can show the failure in place instead of dying.
func ErrorMessage(err error) Message {
	return Message{
		Role:    RoleSystem,
		Content: "error: " + err.Error(),
		Time:    time.Now(),
	}
}
