package parser

import "strings"

// starterExamples seeds tab completion with example phrasings per leading verb.
var starterExamples = map[string][]string{
	"create":  {"create a new python project called", "create a new node project called", "create virtual environment"},
	"install": {"install nodejs", "install python package", "install docker"},
	"show":    {"show system info", "show git status", "show disk usage"},
	"git":     {"git status", "commit changes with message 'update'", "git push"},
	"run":     {"run tests", "run development server", "run build"},
}

const maxSuggestions = 5

// Suggestions implements ports.IntentParser.
func (p *RegexParser) Suggestions(partial string) []string {
	lower := strings.ToLower(strings.TrimSpace(partial))
	if lower == "" {
		return nil
	}
	var out []string
	for starter, examples := range starterExamples {
		if strings.HasPrefix(lower, starter) {
			out = append(out, examples...)
		}
	}
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}
