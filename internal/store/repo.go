package store

import (
	"context"
	"time"

	"github.com/Ricardo071106/Zelar-IA-sub000/internal/domain"
)

// Repo defines storage operations for events and user timezone
// preferences. The Timezone/SetTimezone pair makes it a
// tz.PreferenceStore.
type Repo interface {
	CreateEvent(ctx context.Context, e *domain.Event) error
	ListUpcoming(ctx context.Context, userID string, now time.Time, limit int) ([]domain.Event, error)
	ListReminderDue(ctx context.Context, now time.Time, lead time.Duration, limit int) ([]domain.Event, error)
	MarkReminded(ctx context.Context, id int64, at time.Time) error

	Timezone(ctx context.Context, userID string) (string, bool)
	SetTimezone(ctx context.Context, userID, zone string) error

	Close() error
}
