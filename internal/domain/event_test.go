package domain

import (
	"testing"
	"time"
)

func TestReminderDue(t *testing.T) {
	start := time.Date(2025, time.May, 26, 15, 0, 0, 0, time.UTC)
	lead := time.Hour
	reminded := start.Add(-30 * time.Minute)

	cases := []struct {
		name string
		e    Event
		now  time.Time
		want bool
	}{
		{"inside window", Event{StartsAt: start}, start.Add(-30 * time.Minute), true},
		{"window just opened", Event{StartsAt: start}, start.Add(-lead), true},
		{"too early", Event{StartsAt: start}, start.Add(-2 * time.Hour), false},
		{"already started", Event{StartsAt: start}, start, false},
		{"already reminded", Event{StartsAt: start, RemindedAt: &reminded}, start.Add(-10 * time.Minute), false},
	}
	for _, c := range cases {
		if got := c.e.ReminderDue(c.now, lead); got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestLocalStart(t *testing.T) {
	start := time.Date(2025, time.May, 26, 18, 0, 0, 0, time.UTC)
	e := Event{StartsAt: start, TZ: "America/Sao_Paulo"}
	if got := e.LocalStart().Hour(); got != 15 {
		t.Fatalf("got hour %d, want 15", got)
	}

	// broken zone degrades to UTC instead of failing
	e.TZ = "Not/AZone"
	if got := e.LocalStart().Hour(); got != 18 {
		t.Fatalf("broken zone: got hour %d, want 18", got)
	}
}
