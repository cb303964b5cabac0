package cli

import (
	"strings"

	shellapp "github.com/vibeos/vibesh/internal/application/shell"
)

// replCompleter adapts the parser's suggestion list to the
// readline.AutoCompleter interface.
type replCompleter struct {
	service *shellapp.Service
}

// Do implements readline.AutoCompleter. Suggestions are stored lowercase, so
// the typed prefix is lowered before filtering.
func (c *replCompleter) Do(line []rune, pos int) ([][]rune, int) {
	prefix := string(line[:pos])
	lower := strings.ToLower(prefix)
	var completions [][]rune
	for _, s := range c.service.Suggestions(prefix) {
		if strings.HasPrefix(s, lower) && len(s) > len(lower) {
			completions = append(completions, []rune(s[len(lower):]))
		}
	}
	return completions, len(prefix)
}
