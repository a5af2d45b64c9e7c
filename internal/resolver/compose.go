package resolver

import (
	"fmt"
	"time"
)

// Resolved is the final output of one resolution: the instant itself,
// its machine form, a Portuguese human form, and the zone it was
// interpreted in.
type Resolved struct {
	Instant  time.Time
	ISO      string
	Human    string
	Timezone string
	Title    string
}

var weekdayPT = [7]string{
	"domingo", "segunda-feira", "terça-feira", "quarta-feira",
	"quinta-feira", "sexta-feira", "sábado",
}

var monthPT = [12]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// WeekdayName returns the Portuguese name of d ("segunda-feira").
func WeekdayName(d time.Weekday) string { return weekdayPT[d] }

// HumanTime renders t as Portuguese prose: "segunda-feira, 26 de maio às 15:00".
func HumanTime(t time.Time) string {
	return fmt.Sprintf("%s, %02d de %s às %02d:%02d",
		weekdayPT[t.Weekday()], t.Day(), monthPT[t.Month()-1], t.Hour(), t.Minute())
}

// Compose builds the zoned instant for date+tod interpreted directly in
// zone. The construction never goes through the server's local zone; a
// local-then-convert composition silently shifts the wall clock. The
// wall-clock fields are verified after construction — time.Date
// normalizes out-of-range and DST-gap inputs instead of failing, so the
// round-trip check is what rejects them.
func Compose(date CalendarDate, tod TimeOfDay, zone string) (Resolved, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return Resolved{}, fmt.Errorf("%w: %q", ErrInvalidTimezone, zone)
	}
	t := time.Date(date.Year, date.Month, date.Day, tod.Hour, tod.Minute, 0, 0, loc)
	if t.Hour() != tod.Hour || t.Minute() != tod.Minute ||
		t.Day() != date.Day || t.Month() != date.Month || t.Year() != date.Year {
		return Resolved{}, fmt.Errorf("%w: %04d-%02d-%02d %02d:%02d in %s",
			ErrInvalidInstant, date.Year, date.Month, date.Day, tod.Hour, tod.Minute, zone)
	}
	return Resolved{
		Instant:  t,
		ISO:      t.Format(time.RFC3339),
		Human:    HumanTime(t),
		Timezone: zone,
	}, nil
}
