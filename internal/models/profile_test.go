package models

import (
	"testing"
	"time"
)

func TestPresence(t *testing.T) {
	now := time.Now()
	ago := func(d time.Duration) *time.Time {
		v := now.Add(-d)
		return &v
	}

	tests := []struct {
		name      string
		lastLogin *time.Time
		want      PresenceStatus
	}{
		{"just logged in", &now, PresenceOnline},
		{"14 minutes ago", ago(14 * time.Minute), PresenceOnline},
		{"15 minutes ago", ago(15 * time.Minute), PresenceAway},
		{"59 minutes ago", ago(59 * time.Minute), PresenceAway},
		{"60 minutes ago", ago(60 * time.Minute), PresenceOffline},
		{"5 hours ago", ago(5 * time.Hour), PresenceOffline},
		{"never logged in", nil, PresenceOffline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Profile{LastLogin: tt.lastLogin}
			if got := p.Presence(now); got != tt.want {
				t.Errorf("Presence() = %q, want %q", got, tt.want)
			}
		})
	}
}
