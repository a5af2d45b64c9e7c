package telegram

import (
	"context"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/Ricardo071106/Zelar-IA-sub000/internal/resolver"
	"github.com/Ricardo071106/Zelar-IA-sub000/internal/store"
	"github.com/Ricardo071106/Zelar-IA-sub000/internal/tz"
)

// Pending state keys used in conversational flows.
const (
	pendingTZ = "await_tz_text"
)

// Router wires Telegram updates to handlers and holds minimal in-memory
// state. One Router instance serves the whole bot; the resolver is
// invoked once per inbound message.
type Router struct {
	bot   *tgbotapi.BotAPI
	log   *zap.Logger
	repo  store.Repo
	tzr   *tz.Resolver
	res   *resolver.Resolver
	state map[int64]string // chatID -> pending state
	mu    sync.RWMutex
}

// NewRouter creates a new Telegram router.
func NewRouter(bot *tgbotapi.BotAPI, log *zap.Logger, repo store.Repo, tzr *tz.Resolver, res *resolver.Resolver) *Router {
	return &Router{
		bot:   bot,
		log:   log,
		repo:  repo,
		tzr:   tzr,
		res:   res,
		state: make(map[int64]string),
	}
}

func (r *Router) setPending(chatID int64, s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state[chatID] = s
}

func (r *Router) getPending(chatID int64) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state[chatID]
}

func (r *Router) clearPending(chatID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.state, chatID)
}

// HandleUpdate routes a single update to the appropriate handler.
func (r *Router) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	if upd.Message == nil {
		return
	}
	msg := upd.Message
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	switch {
	case strings.HasPrefix(text, "/start"):
		r.handleStart(msg.Chat.ID)
	case strings.HasPrefix(text, "/agenda"):
		r.handleAgenda(ctx, msg)
	case strings.HasPrefix(text, "/fuso"):
		r.handleFuso(ctx, msg)
	default:
		r.handleFreeForm(ctx, msg)
	}
}

// SendMessage sends a plain text message to the given chat.
// This makes Router satisfy scheduler.Sender.
func (r *Router) SendMessage(chatID int64, text string) error {
	_, err := r.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}
