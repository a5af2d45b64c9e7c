package scheduler

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Ricardo071106/Zelar-IA-sub000/internal/resolver"
	"github.com/Ricardo071106/Zelar-IA-sub000/internal/store"
)

// Sender is the minimal interface the scheduler needs to send a text
// message. telegram.Router implements it.
type Sender interface {
	SendMessage(chatID int64, text string) error
}

// Scheduler periodically polls the store and dispatches pre-event
// reminders.
type Scheduler struct {
	repo     store.Repo
	log      *zap.Logger
	sender   Sender
	lead     time.Duration
	interval time.Duration
}

// New creates a Scheduler reminding `lead` before each event. Poll
// interval is fixed (30s).
func New(repo store.Repo, log *zap.Logger, sender Sender, lead time.Duration) *Scheduler {
	if lead <= 0 {
		lead = time.Hour
	}
	return &Scheduler{
		repo:     repo,
		log:      log,
		sender:   sender,
		lead:     lead,
		interval: 30 * time.Second,
	}
}

// Run starts the loop until ctx is canceled.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("scheduler stopping")
			return
		case <-ticker.C:
			s.tick(ctx, time.Now().UTC())
		}
	}
}

// tick performs one cycle: find events entering the reminder window,
// send, mark reminded.
func (s *Scheduler) tick(ctx context.Context, now time.Time) {
	events, err := s.repo.ListReminderDue(ctx, now, s.lead, 100)
	if err != nil {
		s.log.Error("ListReminderDue failed", zap.Error(err))
		return
	}
	for _, e := range events {
		if !e.ReminderDue(now, s.lead) {
			continue
		}
		text := fmt.Sprintf("⏰ Lembrete: %s, %s", e.Title, resolver.HumanTime(e.LocalStart()))
		if err := s.sender.SendMessage(e.ChatID, text); err != nil {
			s.log.Error("send failed", zap.Error(err), zap.Int64("chatID", e.ChatID))
			continue
		}
		if err := s.repo.MarkReminded(ctx, e.ID, now); err != nil {
			s.log.Error("MarkReminded failed", zap.Error(err), zap.Int64("eventID", e.ID))
		}
	}
}
