package resolver

import (
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/br"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// grammar wraps the general-purpose date-phrase parser used as the
// second escalation step. Brazilian rules first; English and the common
// set cover the anglicisms that show up in chat ("call", "in 2 days").
type grammar struct {
	w *when.Parser
}

func newGrammar() *grammar {
	w := when.New(nil)
	w.Add(br.All...)
	w.Add(en.All...)
	w.Add(common.All...)
	return &grammar{w: w}
}

// Extract runs the grammar over text with the anchor as base. A date
// strictly in the past rolls forward 7 days (weekly-recurrence
// heuristic). The returned TimeOfDay is nil unless the grammar itself
// set the clock: the parser copies unmatched clock fields from its base,
// so a clock equal to the anchor's carries no information.
func (g *grammar) Extract(text string, anchor time.Time) (CalendarDate, *TimeOfDay, bool) {
	r, err := g.w.Parse(text, anchor)
	if err != nil || r == nil {
		return CalendarDate{}, nil, false
	}
	d := dateOf(r.Time)
	if d.Before(dateOf(anchor)) {
		d = d.AddDays(7)
	}
	var tod *TimeOfDay
	if r.Time.Hour() != anchor.Hour() || r.Time.Minute() != anchor.Minute() {
		tod = &TimeOfDay{Hour: r.Time.Hour(), Minute: r.Time.Minute()}
	}
	return d, tod, true
}
