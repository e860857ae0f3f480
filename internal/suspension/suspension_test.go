package suspension

import (
	"errors"
	"testing"
	"time"

	"stayadmin-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func TestFromToken(t *testing.T) {
	tests := []struct {
		token string
		want  State
	}{
		{"3d", State{Kind: SuspendedUntil, Until: now.AddDate(0, 0, 3)}},
		{"7d", State{Kind: SuspendedUntil, Until: now.AddDate(0, 0, 7)}},
		{"1m", State{Kind: SuspendedUntil, Until: now.AddDate(0, 1, 0)}},
		{"forever", State{Kind: SuspendedForever}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			state, err := FromToken(tt.token, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, state)
		})
	}
}

func TestFromTokenDayArithmetic(t *testing.T) {
	state, err := FromToken("3d", now)
	require.NoError(t, err)
	assert.Equal(t, 3*24*time.Hour, state.Until.Sub(now))

	state, err = FromToken("7d", now)
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, state.Until.Sub(now))
}

func TestFromTokenCalendarMonth(t *testing.T) {
	// A calendar month, not 30 days: Jan 31 + 1m normalizes past February
	jan31 := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	state, err := FromToken("1m", jan31)
	require.NoError(t, err)
	assert.Equal(t, jan31.AddDate(0, 1, 0), state.Until)
}

func TestFromTokenInvalid(t *testing.T) {
	for _, token := range []string{"", "5d", "1y", "Forever", "3D", "never"} {
		t.Run("token "+token, func(t *testing.T) {
			_, err := FromToken(token, now)
			require.Error(t, err)

			var invalid *InvalidDurationError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, token, invalid.Token)
		})
	}
}

func TestActive(t *testing.T) {
	tests := []struct {
		name  string
		state State
		at    time.Time
		want  bool
	}{
		{"not suspended", State{Kind: NotSuspended}, now, false},
		{"forever always active", State{Kind: SuspendedForever}, now.AddDate(10, 0, 0), true},
		{"timed active before expiry", State{Kind: SuspendedUntil, Until: now.Add(time.Hour)}, now, true},
		{"timed inactive at expiry", State{Kind: SuspendedUntil, Until: now}, now, false},
		{"timed inactive after expiry", State{Kind: SuspendedUntil, Until: now.Add(-time.Hour)}, now, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.Active(tt.at))
		})
	}
}

func TestColumnsRoundTrip(t *testing.T) {
	until := now.AddDate(0, 0, 7)

	tests := []struct {
		name  string
		state State
	}{
		{"not suspended", State{Kind: NotSuspended}},
		{"timed", State{Kind: SuspendedUntil, Until: until}},
		{"forever", State{Kind: SuspendedForever}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols := tt.state.Columns()

			// Rebuild a user row from the column map and read it back
			user := model.User{}
			if v, ok := cols["suspended_until"].(*time.Time); ok && v != nil {
				user.SuspendedUntil = v
			}
			if v, ok := cols["suspended_forever"].(bool); ok {
				user.SuspendedForever = v
			}

			assert.Equal(t, tt.state, Of(&user))
		})
	}
}

func TestColumnsForeverClearsUntil(t *testing.T) {
	cols := State{Kind: SuspendedForever}.Columns()
	assert.Nil(t, cols["suspended_until"])
	assert.Equal(t, true, cols["suspended_forever"])
}
