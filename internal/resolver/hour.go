package resolver

import (
	"regexp"
	"strconv"
	"strings"
)

// Default applied when a message carries a date but no explicit time.
const (
	DefaultHour   = 9
	DefaultMinute = 0
)

// TimeOfDay is a wall-clock time with no date attached.
type TimeOfDay struct {
	Hour   int
	Minute int
}

var (
	// "19:30", "19h30"
	reClockMinutes = regexp.MustCompile(`\b(\d{1,2})[:h]([0-5][0-9])\b`)
	// "19h"
	reHourSuffix = regexp.MustCompile(`\b(\d{1,2})h\b`)
	// "às 7", "as 7" — \b does not work before "à" (non-ASCII), hence the
	// explicit leading alternation.
	reAtHour = regexp.MustCompile(`(?:^|\s)[àa]s\s+(\d{1,2})\b`)
	// "7pm", "11 am"
	reMeridiem = regexp.MustCompile(`\b(\d{1,2})\s*(am|pm)\b`)
	// bare "19" — least reliable, tried after everything numeric above
	reBareHour = regexp.MustCompile(`\b(\d{1,2})\b`)
)

// Spelled-out hours, longest words first so "vinte e três" wins over
// "vinte" and "três". "uma"/"duas" double as articles in Portuguese and
// are handled separately with a preposition context.
var spelledHours = []struct {
	word string
	hour int
}{
	{"vinte e três", 23}, {"vinte e tres", 23},
	{"vinte e duas", 22},
	{"vinte e uma", 21},
	{"vinte", 20},
	{"dezenove", 19}, {"dezoito", 18}, {"dezessete", 17}, {"dezesseis", 16},
	{"quinze", 15}, {"quatorze", 14}, {"catorze", 14}, {"treze", 13},
	{"meio-dia", 12}, {"meio dia", 12}, {"doze", 12},
	{"onze", 11}, {"dez", 10}, {"nove", 9}, {"oito", 8}, {"sete", 7},
	{"seis", 6}, {"cinco", 5}, {"quatro", 4}, {"três", 3}, {"tres", 3},
	{"meia-noite", 0}, {"meia noite", 0},
}

var spelledRe = func() *regexp.Regexp {
	words := make([]string, 0, len(spelledHours))
	for _, s := range spelledHours {
		words = append(words, s.word)
	}
	return regexp.MustCompile(`\b(` + strings.Join(words, "|") + `)\b`)
}()

// "às uma", "uma da tarde", "duas horas" — the only contexts where the
// feminine one/two is read as an hour rather than an article.
var reOneTwo = regexp.MustCompile(`(?:(?:^|\s)[àa]s\s+(uma|duas)\b|\b(uma|duas)\s+(?:hora|da\s+(?:manh|tarde|noite)))`)

// ExtractTime scans text for an explicit time of day. The second return
// value is false when no pattern matched; callers then apply the 09:00
// default.
func ExtractTime(text string) (TimeOfDay, bool) {
	t := strings.ToLower(text)

	if m := reClockMinutes.FindStringSubmatch(t); m != nil {
		h, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		if h <= 23 {
			return TimeOfDay{Hour: h, Minute: min}, true
		}
	}
	if m := reHourSuffix.FindStringSubmatch(t); m != nil {
		if h, _ := strconv.Atoi(m[1]); h <= 23 {
			return TimeOfDay{Hour: h}, true
		}
	}
	if m := reAtHour.FindStringSubmatch(t); m != nil {
		if h, _ := strconv.Atoi(m[1]); h <= 23 {
			return TimeOfDay{Hour: h}, true
		}
	}
	if m := reMeridiem.FindStringSubmatch(t); m != nil {
		h, _ := strconv.Atoi(m[1])
		if h >= 1 && h <= 12 {
			return TimeOfDay{Hour: meridiemHour(h, m[2])}, true
		}
	}
	// Bare numbers last: skip candidates out of the 0..23 range so "dia 26"
	// does not read as an hour.
	for _, m := range reBareHour.FindAllStringSubmatch(t, -1) {
		if h, _ := strconv.Atoi(m[1]); h <= 23 {
			return TimeOfDay{Hour: h}, true
		}
	}
	if m := spelledRe.FindStringSubmatch(t); m != nil {
		return TimeOfDay{Hour: spelledHour(m[1])}, true
	}
	if m := reOneTwo.FindStringSubmatch(t); m != nil {
		w := m[1]
		if w == "" {
			w = m[2]
		}
		if w == "duas" {
			return TimeOfDay{Hour: 2}, true
		}
		return TimeOfDay{Hour: 1}, true
	}
	return TimeOfDay{}, false
}

func meridiemHour(h int, suffix string) int {
	if suffix == "am" {
		if h == 12 {
			return 0
		}
		return h
	}
	if h < 12 {
		return h + 12
	}
	return h
}

func spelledHour(word string) int {
	for _, s := range spelledHours {
		if s.word == word {
			return s.hour
		}
	}
	return 0
}

var (
	nightMarkers     = []string{"da noite", "de noite", "à noite"}
	afternoonMarkers = []string{"da tarde", "de tarde", "à tarde"}
)

// CorrectPeriod remaps a 12-hour-ambiguous hour using period-of-day
// markers: "sete da noite" is 19, not 07. Afternoon markers get the same
// treatment ("quatro da tarde" → 16); morning markers change nothing.
// Hours already ≥ 12 are left alone.
func CorrectPeriod(hour int, text string) int {
	if hour >= 12 {
		return hour
	}
	t := strings.ToLower(text)
	if containsAny(t, nightMarkers) || containsAny(t, afternoonMarkers) {
		return hour + 12
	}
	return hour
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
