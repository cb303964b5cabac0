package assistant

import (
	"strings"
	"unicode/utf8"
)

// maxInputLength bounds the text forwarded to the assistant binary.
const maxInputLength = 10_000

// SanitizeInput strips shell metacharacters from user text before it is
// embedded in the prompt. The assistant receives plain words; the compound
// command it returns is what eventually reaches the shell.
func SanitizeInput(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		switch r {
		case ';', '&', '|', '>', '<', '$', '`', '\\', '\n', '\r':
			continue
		}
		b.WriteRune(r)
	}
	out := strings.TrimSpace(b.String())
	if len(out) > maxInputLength {
		// Back off to a rune boundary so the cut never produces invalid UTF-8.
		cut := maxInputLength
		for cut > 0 && !utf8.RuneStart(out[cut]) {
			cut--
		}
		out = out[:cut]
	}
	return out
}
