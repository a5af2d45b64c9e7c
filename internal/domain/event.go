package domain

import "time"

// Event is a calendar event created from one chat message. Times are
// stored in UTC; TZ records the zone the message was interpreted in so
// the event can be rendered back on the user's wall clock.
type Event struct {
	ID         int64
	UserID     string
	ChatID     int64
	Title      string
	StartsAt   time.Time // UTC
	TZ         string
	RemindedAt *time.Time // UTC, nullable
	CreatedAt  time.Time  // UTC
}

// LocalStart returns the event start on the user's wall clock. An
// unloadable zone (zone data removed since creation) degrades to UTC.
func (e *Event) LocalStart() time.Time {
	loc, err := time.LoadLocation(e.TZ)
	if err != nil {
		return e.StartsAt.UTC()
	}
	return e.StartsAt.In(loc)
}

// ReminderDue reports whether the pre-event reminder should fire at now.
// Fires once, within the lead window, never after the event started.
func (e *Event) ReminderDue(now time.Time, lead time.Duration) bool {
	if e.RemindedAt != nil {
		return false
	}
	if !e.StartsAt.After(now) {
		return false
	}
	return !e.StartsAt.Add(-lead).After(now)
}
