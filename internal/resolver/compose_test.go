package resolver

import (
	"errors"
	"testing"
	"time"
)

func TestCompose_RoundTrip(t *testing.T) {
	zones := []string{
		"America/Sao_Paulo",
		"America/New_York",
		"Europe/Lisbon",
		"Asia/Tokyo",
		"UTC",
	}
	times := []TimeOfDay{{0, 0}, {9, 0}, {15, 30}, {23, 59}}
	date := CalendarDate{2025, time.May, 26}

	for _, zone := range zones {
		for _, tod := range times {
			res, err := Compose(date, tod, zone)
			if err != nil {
				t.Fatalf("%s %02d:%02d: %v", zone, tod.Hour, tod.Minute, err)
			}
			parsed, err := time.Parse(time.RFC3339, res.ISO)
			if err != nil {
				t.Fatalf("%s: reparse %q: %v", zone, res.ISO, err)
			}
			loc, _ := time.LoadLocation(zone)
			back := parsed.In(loc)
			if back.Hour() != tod.Hour || back.Minute() != tod.Minute {
				t.Errorf("%s: wall clock shifted, got %02d:%02d want %02d:%02d",
					zone, back.Hour(), back.Minute(), tod.Hour, tod.Minute)
			}
			if !parsed.Equal(res.Instant) {
				t.Errorf("%s: ISO does not reproduce the instant", zone)
			}
		}
	}
}

func TestCompose_InvalidZone(t *testing.T) {
	_, err := Compose(CalendarDate{2025, time.May, 26}, TimeOfDay{Hour: 9}, "Not/AZone")
	if !errors.Is(err, ErrInvalidTimezone) {
		t.Fatalf("got %v, want ErrInvalidTimezone", err)
	}
}

func TestCompose_DSTGapRejected(t *testing.T) {
	// 2025-03-09 02:30 does not exist in New York; time.Date normalizes
	// it to 03:30, which the round-trip check must reject.
	_, err := Compose(CalendarDate{2025, time.March, 9}, TimeOfDay{Hour: 2, Minute: 30}, "America/New_York")
	if !errors.Is(err, ErrInvalidInstant) {
		t.Fatalf("got %v, want ErrInvalidInstant", err)
	}
}

func TestHumanTime(t *testing.T) {
	loc, _ := time.LoadLocation("America/Sao_Paulo")
	got := HumanTime(time.Date(2025, time.May, 26, 15, 0, 0, 0, loc))
	want := "segunda-feira, 26 de maio às 15:00"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
