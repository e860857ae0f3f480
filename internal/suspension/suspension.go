package suspension

import (
	"fmt"
	"time"

	"stayadmin-service/internal/model"
)

// Kind discriminates the suspension state. A tagged variant is used
// instead of a far-future sentinel timestamp so that "forever" never
// depends on date arithmetic.
type Kind int

const (
	NotSuspended Kind = iota
	SuspendedUntil
	SuspendedForever
)

// State is an account's suspension state
type State struct {
	Kind  Kind
	Until time.Time
}

// InvalidDurationError reports an unrecognized suspension duration token.
// It fails fast before any write is attempted.
type InvalidDurationError struct {
	Token string
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("invalid suspension duration %q", e.Token)
}

// FromToken maps a duration token to a suspension state relative to now:
// "3d" and "7d" add days, "1m" adds one calendar month, "forever" is the
// indefinite variant. Any other token is an InvalidDurationError.
func FromToken(token string, now time.Time) (State, error) {
	switch token {
	case "3d":
		return State{Kind: SuspendedUntil, Until: now.AddDate(0, 0, 3)}, nil
	case "7d":
		return State{Kind: SuspendedUntil, Until: now.AddDate(0, 0, 7)}, nil
	case "1m":
		return State{Kind: SuspendedUntil, Until: now.AddDate(0, 1, 0)}, nil
	case "forever":
		return State{Kind: SuspendedForever}, nil
	default:
		return State{}, &InvalidDurationError{Token: token}
	}
}

// Active reports whether the suspension is in force at the given instant
func (s State) Active(now time.Time) bool {
	switch s.Kind {
	case SuspendedForever:
		return true
	case SuspendedUntil:
		return now.Before(s.Until)
	default:
		return false
	}
}

// Of reads an account's suspension state from its stored columns
func Of(u *model.User) State {
	if u.SuspendedForever {
		return State{Kind: SuspendedForever}
	}
	if u.SuspendedUntil != nil {
		return State{Kind: SuspendedUntil, Until: *u.SuspendedUntil}
	}
	return State{Kind: NotSuspended}
}

// Columns translates a state back to the users table columns, for use in
// a single atomic update keyed by account id.
func (s State) Columns() map[string]interface{} {
	switch s.Kind {
	case SuspendedForever:
		return map[string]interface{}{"suspended_until": nil, "suspended_forever": true}
	case SuspendedUntil:
		until := s.Until
		return map[string]interface{}{"suspended_until": &until, "suspended_forever": false}
	default:
		return map[string]interface{}{"suspended_until": nil, "suspended_forever": false}
	}
}
