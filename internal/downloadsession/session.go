package downloadsession

import (
	"time"

	"github.com/google/uuid"
)

// Status is a download session's position in its lifecycle. Within one
// lifecycle the status is monotonic: Idle → Initiating → (Downloading →
// Complete | Error | Failed) → Idle. No transition skips Initiating, and
// every terminal status is followed by a timed reset back to Idle.
type Status int

const (
	StatusIdle Status = iota
	StatusInitiating
	StatusDownloading
	StatusComplete
	StatusError
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusInitiating:
		return "initiating"
	case StatusDownloading:
		return "downloading"
	case StatusComplete:
		return "complete"
	case StatusError:
		return "error"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Label is the human-readable status text shown next to the trigger. Idle
// clears the text entirely.
func (s Status) Label() string {
	switch s {
	case StatusInitiating:
		return "Initiating..."
	case StatusDownloading:
		return "Downloading..."
	case StatusComplete:
		return "Complete!"
	case StatusError:
		return "Error!"
	case StatusFailed:
		return "Failed!"
	default:
		return ""
	}
}

// terminal reports whether the status ends a lifecycle and therefore owes the
// user a timed reset back to Idle.
func (s Status) terminal() bool {
	return s == StatusComplete || s == StatusError || s == StatusFailed
}

// Key identifies one session. Distinct keys own distinct sessions with no
// shared mutable state between them.
type Key struct {
	ItemID   string
	Platform Platform
}

// session tracks the lifecycle of one (item, platform) download. Sessions
// are created lazily on the first trigger for their key and live for the
// process lifetime, resting at Idle between lifecycles.
type session struct {
	id        string    // correlation id of the current lifecycle (UUIDv7)
	status    Status
	startedAt time.Time // when the current lifecycle was triggered
	fileName  string    // artifact name reported by the dispatch service

	// gen invalidates everything scheduled for a previous lifecycle: timers
	// and in-flight dispatch results compare their captured value against it
	// before touching the session.
	gen   uint64
	timer *time.Timer // pending scheduled transition, replaced, never stacked
}

// begin starts a new lifecycle: it claims the next generation, assigns a
// fresh correlation id, and cancels whatever the previous lifecycle still had
// scheduled.
func (s *session) begin(now time.Time) uint64 {
	s.gen++
	s.id = uuid.Must(uuid.NewV7()).String()
	s.startedAt = now
	s.fileName = ""

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	return s.gen
}

// Snapshot is an observer's view of a session at one transition.
type Snapshot struct {
	Key       Key
	SessionID string
	Status    Status
	Label     string
	FileName  string
	StartedAt time.Time
}

func (s *session) snapshot(key Key) Snapshot {
	return Snapshot{
		Key:       key,
		SessionID: s.id,
		Status:    s.status,
		Label:     s.status.Label(),
		FileName:  s.fileName,
		StartedAt: s.startedAt,
	}
}
