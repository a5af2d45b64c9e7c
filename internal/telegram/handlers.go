package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/Ricardo071106/Zelar-IA-sub000/internal/domain"
	"github.com/Ricardo071106/Zelar-IA-sub000/internal/resolver"
)

func (r *Router) sendText(chatID int64, text string) {
	_, _ = r.bot.Send(tgbotapi.NewMessage(chatID, text))
}

func userID(msg *tgbotapi.Message) string {
	if msg.From != nil {
		return strconv.FormatInt(msg.From.ID, 10)
	}
	return strconv.FormatInt(msg.Chat.ID, 10)
}

func locale(msg *tgbotapi.Message) string {
	if msg.From != nil {
		return msg.From.LanguageCode
	}
	return ""
}

func (r *Router) handleStart(chatID int64) {
	r.clearPending(chatID)
	r.sendText(chatID, startText)
}

// handleFreeForm resolves an informal sentence into an event, unless the
// chat is mid "set timezone" flow.
func (r *Router) handleFreeForm(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	if r.getPending(chatID) == pendingTZ {
		r.clearPending(chatID)
		r.trySetTZ(ctx, chatID, userID(msg), text)
		return
	}

	q := resolver.Query{Text: text, UserID: userID(msg), Locale: locale(msg)}
	res, err := r.res.Resolve(ctx, q)
	switch {
	case errors.Is(err, resolver.ErrNoTemporalExpression):
		r.sendText(chatID, didNotUnderstandText)
		return
	case err != nil:
		r.log.Error("resolve failed", zap.Error(err), zap.String("user", q.UserID))
		r.sendText(chatID, resolveErrorText)
		return
	}

	e := &domain.Event{
		UserID:    q.UserID,
		ChatID:    chatID,
		Title:     res.Title,
		StartsAt:  res.Instant.UTC(),
		TZ:        res.Timezone,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.repo.CreateEvent(ctx, e); err != nil {
		r.log.Error("CreateEvent failed", zap.Error(err), zap.String("user", q.UserID))
		r.sendText(chatID, storeErrorText)
		return
	}

	r.log.Info("event created",
		zap.Int64("eventID", e.ID),
		zap.String("user", q.UserID),
		zap.String("starts", res.ISO),
		zap.String("tz", res.Timezone),
	)
	r.sendText(chatID, fmt.Sprintf(confirmFmt, res.Title, res.Human, res.Timezone))
}

func (r *Router) handleAgenda(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	r.clearPending(chatID)
	events, err := r.repo.ListUpcoming(ctx, userID(msg), time.Now().UTC(), 10)
	if err != nil {
		r.log.Error("ListUpcoming failed", zap.Error(err))
		r.sendText(chatID, storeErrorText)
		return
	}
	if len(events) == 0 {
		r.sendText(chatID, emptyAgendaText)
		return
	}
	var b strings.Builder
	b.WriteString(agendaTitle)
	for _, e := range events {
		fmt.Fprintf(&b, "\n• %s, %s", e.Title, resolver.HumanTime(e.LocalStart()))
	}
	r.sendText(chatID, b.String())
}

// handleFuso sets the user's timezone: "/fuso America/Bahia" applies
// immediately, bare "/fuso" asks for the zone first.
func (r *Router) handleFuso(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	r.clearPending(chatID)
	zone := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(msg.Text), "/fuso"))
	if zone == "" {
		r.setPending(chatID, pendingTZ)
		r.sendText(chatID, askTZText)
		return
	}
	r.trySetTZ(ctx, chatID, userID(msg), zone)
}

func (r *Router) trySetTZ(ctx context.Context, chatID int64, uid, zone string) {
	if !r.tzr.Set(ctx, uid, zone) {
		r.sendText(chatID, fmt.Sprintf(invalidTZFmt, zone))
		return
	}
	r.log.Info("timezone set", zap.String("user", uid), zap.String("tz", zone))
	r.sendText(chatID, fmt.Sprintf(tzSetFmt, zone))
}
