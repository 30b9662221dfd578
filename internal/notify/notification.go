// Package notify holds transient user-facing messages (toasts) for the lifetime of a
// provider scope. Each notification is displayed when added and removed either by an
// explicit dismissal or when its duration elapses.
package notify

import (
	"errors"
	"time"
)

// Type is the notification severity.
type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
)

// Valid reports whether t is one of the known severities.
func (t Type) Valid() bool {
	switch t {
	case TypeInfo, TypeSuccess, TypeWarning, TypeError:
		return true
	}
	return false
}

// DefaultDuration is how long a notification stays when no duration is given.
const DefaultDuration = 3000 * time.Millisecond

type Notification struct {
	ID        string
	Message   string
	Type      Type
	Duration  time.Duration // <= 0 keeps the notification until it is removed
	CreatedAt time.Time
}

// RemovalReason tells a Displayer why a notification left the registry.
type RemovalReason string

const (
	ReasonDismissed RemovalReason = "dismissed"
	ReasonExpired   RemovalReason = "expired"
	ReasonClosed    RemovalReason = "closed"
)

// ScopeError is returned when the notification API is used without a live provider.
type ScopeError struct {
	msg string
}

func (e *ScopeError) Error() string {
	return e.msg
}

var (
	ErrNoProvider     = &ScopeError{msg: "must be used within a NotificationProvider"}
	ErrProviderClosed = &ScopeError{msg: "notification provider has been closed"}

	ErrInvalidType = errors.New("invalid notification type")
)
