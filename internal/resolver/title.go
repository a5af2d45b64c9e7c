package resolver

import (
	"regexp"
	"strings"
)

// Patterns removed from the message when deriving the event title. The
// accent-final words (amanhã, manhã) cannot take a trailing \b — RE2
// word boundaries are ASCII-only — so those alternatives end the match
// at the accented rune instead.
var titleStrip = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(próxim[ao]|proxim[ao])\b`),
	regexp.MustCompile(`(?i)\bque\s+vem\b`),
	regexp.MustCompile(`(?i)\b(segunda|terça|terca|quarta|quinta|sexta)(-feira)?\b`),
	regexp.MustCompile(`(?i)\b(sábado\b|sabado\b|domingo\b|hoje\b|amanhã|amanha\b)`),
	regexp.MustCompile(`(?i)(^|\s)[àa]s?\s+\d{1,2}([:h][0-5][0-9])?h?\b`),
	regexp.MustCompile(`(?i)\b\d{1,2}([:h][0-5][0-9])?h?\s*(am|pm)?\b`),
	regexp.MustCompile(`(?i)(^|\s)(da|de|[àa])\s+(manhã|manha\b|tarde\b|noite\b)`),
	regexp.MustCompile(`(?i)\b(meio[- ]dia|meia[- ]noite|vinte e (uma|duas|tr[êe]s)|vinte\b|dezenove|dezoito|dezessete|dezesseis|quinze|quatorze|catorze|treze|doze|onze|dez\b|nove|oito|sete|seis|cinco|quatro|tr[êe]s\b)`),
}

var fillerWords = map[string]bool{
	"a": true, "o": true, "as": true, "os": true,
	"às": true, "de": true, "da": true, "do": true,
	"em": true, "no": true, "na": true, "para": true, "pra": true,
	"um": true, "uma": true, "e": true,
}

// Title derives an event title from the raw message by stripping the
// temporal tokens and trailing filler. Empty results become
// "Compromisso".
func Title(text string) string {
	s := text
	for _, re := range titleStrip {
		s = re.ReplaceAllString(s, " ")
	}
	words := strings.Fields(s)
	for len(words) > 0 && fillerWords[strings.ToLower(words[0])] {
		words = words[1:]
	}
	for len(words) > 0 && fillerWords[strings.ToLower(words[len(words)-1])] {
		words = words[:len(words)-1]
	}
	s = strings.Trim(strings.Join(words, " "), " ,.;:-")
	if s == "" {
		return "Compromisso"
	}
	return s
}
