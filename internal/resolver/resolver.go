// Package resolver turns informal Portuguese temporal expressions
// ("reunião amanhã às 15h") into timezone-correct future instants.
//
// Resolution escalates through three strategies: the deterministic
// extractors in this package, a general-purpose date-phrase grammar,
// and finally an AI oracle. A missing time of day never escalates — it
// defaults to 09:00; only a missing date does.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Ricardo071106/Zelar-IA-sub000/internal/tz"
)

var (
	ErrNoTemporalExpression = errors.New("no temporal expression found")
	ErrInvalidTimezone      = errors.New("invalid timezone")
	ErrInvalidInstant       = errors.New("invalid instant")
	ErrOracleUnavailable    = errors.New("oracle unavailable")
)

// Query is one incoming utterance to resolve.
type Query struct {
	Text   string
	UserID string
	Locale string
}

// Interpretation is the structured guess returned by the AI oracle.
// Anything the oracle could not read comes back with IsValid false.
type Interpretation struct {
	Title   string `json:"title"`
	Date    string `json:"date"` // YYYY-MM-DD
	Hour    int    `json:"hour"`
	Minute  int    `json:"minute"`
	IsValid bool   `json:"isValid"`
	Error   string `json:"error,omitempty"`
}

// Oracle is the external collaborator consulted when both the
// deterministic extractors and the grammar fail.
type Oracle interface {
	Interpret(ctx context.Context, text, referenceDate string) (Interpretation, error)
}

// Resolver resolves temporal queries. Safe for concurrent use; the only
// shared state is the timezone preference store behind tzr.
type Resolver struct {
	tzr     *tz.Resolver
	grammar *grammar
	oracle  Oracle
	log     *zap.Logger
}

// New creates a Resolver. oracle may be nil, in which case the chain
// ends after the grammar step.
func New(tzr *tz.Resolver, oracle Oracle, log *zap.Logger) *Resolver {
	return &Resolver{
		tzr:     tzr,
		grammar: newGrammar(),
		oracle:  oracle,
		log:     log,
	}
}

// Resolve resolves q against the real current instant.
func (r *Resolver) Resolve(ctx context.Context, q Query) (Resolved, error) {
	return r.ResolveAt(ctx, q, time.Now())
}

// ResolveAt resolves q against an injected "now".
func (r *Resolver) ResolveAt(ctx context.Context, q Query, now time.Time) (Resolved, error) {
	zone := r.tzr.Resolve(ctx, q.UserID, q.Locale)
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return Resolved{}, fmt.Errorf("%w: %q", ErrInvalidTimezone, zone)
	}
	anchor := now.In(loc)

	tod, hasTime := ExtractTime(q.Text)
	if hasTime {
		tod.Hour = CorrectPeriod(tod.Hour, q.Text)
	} else {
		tod = TimeOfDay{Hour: DefaultHour, Minute: DefaultMinute}
	}

	title := ""
	date, ok := ExtractDate(q.Text, anchor, tod)
	if !ok {
		if gd, gt, gok := r.grammar.Extract(q.Text, anchor); gok {
			date, ok = gd, true
			if !hasTime && gt != nil {
				tod = *gt
			}
		}
	}
	if !ok {
		interp, oerr := r.consultOracle(ctx, q.Text, anchor)
		if oerr != nil {
			r.log.Warn("oracle escalation failed", zap.Error(oerr))
			return Resolved{}, ErrNoTemporalExpression
		}
		if !interp.IsValid {
			return Resolved{}, ErrNoTemporalExpression
		}
		d, perr := time.Parse("2006-01-02", interp.Date)
		if perr != nil {
			return Resolved{}, ErrNoTemporalExpression
		}
		date = dateOf(d)
		if !hasTime {
			tod = TimeOfDay{Hour: interp.Hour, Minute: interp.Minute}
		}
		title = interp.Title
	}

	res, err := Compose(date, tod, zone)
	if err != nil {
		return Resolved{}, err
	}
	// Result must lie in the future. "hoje às 9" sent at 20:00 rolls to
	// tomorrow; weekday references already rolled a full week upstream.
	if !res.Instant.After(anchor) {
		res, err = Compose(date.AddDays(1), tod, zone)
		if err != nil {
			return Resolved{}, err
		}
	}
	if title == "" {
		title = Title(q.Text)
	}
	res.Title = title
	return res, nil
}

func (r *Resolver) consultOracle(ctx context.Context, text string, anchor time.Time) (Interpretation, error) {
	if r.oracle == nil {
		return Interpretation{}, fmt.Errorf("%w: not configured", ErrOracleUnavailable)
	}
	return r.oracle.Interpret(ctx, text, anchor.Format("2006-01-02"))
}
