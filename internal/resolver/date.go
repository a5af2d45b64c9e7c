package resolver

import (
	"regexp"
	"strings"
	"time"
)

// CalendarDate is a date with no time component.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

func dateOf(t time.Time) CalendarDate {
	return CalendarDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// AddDays returns the date n days later, normalizing month/year rollover.
func (d CalendarDate) AddDays(n int) CalendarDate {
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
	return dateOf(t)
}

// Before reports whether d is strictly earlier than other.
func (d CalendarDate) Before(other CalendarDate) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// Weekday stems as written in chat, with and without accents. The
// "-feira" suffix is optional ("sexta" and "sexta-feira" both work), so
// only the stem is matched — but as a whole word: "quintal" is not
// "quinta". \b works despite being ASCII-only in RE2 because every stem
// begins and ends on an unaccented letter. The stem appearing earliest
// in the text wins.
var weekdayStems = map[string]time.Weekday{
	"domingo": time.Sunday,
	"segunda": time.Monday,
	"terça":   time.Tuesday,
	"terca":   time.Tuesday,
	"quarta":  time.Wednesday,
	"quinta":  time.Thursday,
	"sexta":   time.Friday,
	"sábado":  time.Saturday,
	"sabado":  time.Saturday,
}

var weekdayRe = regexp.MustCompile(`\b(domingo|segunda|terça|terca|quarta|quinta|sexta|sábado|sabado)\b`)

var nextMarkers = []string{"próxima", "proxima", "próximo", "proximo", "que vem"}

// ExtractDate finds a relative date reference in text, anchored at the
// caller's "now" in the user's timezone. tod is the already-extracted
// (and period-corrected) time of day; it breaks the tie when the named
// weekday is today's. Priority: weekday name, then "hoje", then
// "amanhã". The generic grammar and the oracle are escalations handled
// by the Resolver, not here.
func ExtractDate(text string, anchor time.Time, tod TimeOfDay) (CalendarDate, bool) {
	t := strings.ToLower(text)

	if m := weekdayRe.FindStringSubmatch(t); m != nil {
		return nextWeekday(anchor, weekdayStems[m[1]], tod, containsAny(t, nextMarkers)), true
	}
	if strings.Contains(t, "hoje") {
		return dateOf(anchor), true
	}
	if strings.Contains(t, "amanhã") || strings.Contains(t, "amanha") {
		return dateOf(anchor).AddDays(1), true
	}
	return CalendarDate{}, false
}

// nextWeekday computes the next occurrence of day on or after the anchor
// date. When the anchor already falls on that weekday, today is kept only
// if the requested time of day is still ahead; an explicit "próxima"/"que
// vem" marker always forces the following week.
func nextWeekday(anchor time.Time, day time.Weekday, tod TimeOfDay, forceNext bool) CalendarDate {
	delta := (int(day) - int(anchor.Weekday()) + 7) % 7
	if delta == 0 {
		switch {
		case forceNext:
			delta = 7
		case tod.Hour < anchor.Hour(),
			tod.Hour == anchor.Hour() && tod.Minute <= anchor.Minute():
			delta = 7
		}
	}
	return dateOf(anchor).AddDays(delta)
}
