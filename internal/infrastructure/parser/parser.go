// Package parser implements the regex-based intent classifier.
package parser

import (
	"strings"

	"github.com/vibeos/vibesh/internal/domain"
	"github.com/vibeos/vibesh/internal/ports"
)

// RegexParser matches free text against the static pattern table. It holds no
// mutable state and is safe for concurrent use.
type RegexParser struct{}

// New returns the table-driven parser.
func New() *RegexParser {
	return &RegexParser{}
}

// Parse implements ports.IntentParser. The input is trimmed and lowercased,
// then matched against the table in (intent, pattern) order; the first match
// wins with no ranking by specificity or length. When nothing matches, a
// keyword classifier assigns a suggestion intent carrying the original text.
func (p *RegexParser) Parse(text string) (domain.Intent, domain.Params) {
	normalized := strings.ToLower(strings.TrimSpace(text))

	for _, entry := range patternTable {
		for _, re := range entry.patterns {
			match := re.FindStringSubmatch(normalized)
			if match == nil {
				continue
			}
			return entry.intent, extractParams(entry.intent, match)
		}
	}

	return fallbackParse(text)
}

func extractParams(intent domain.Intent, match []string) domain.Params {
	switch intent {
	case domain.IntentCreateProject:
		return domain.CreateProjectParams{Type: match[1], Name: match[2]}
	case domain.IntentInstallPackage:
		return domain.InstallPackageParams{Packages: splitPackages(match[1])}
	case domain.IntentSearchPackage:
		return domain.SearchPackageParams{Query: match[1]}
	case domain.IntentGitCommit:
		return domain.GitCommitParams{Message: match[1]}
	case domain.IntentChangeDirectory:
		return domain.ChangeDirectoryParams{Path: strings.TrimSpace(match[1])}
	default:
		return domain.NoParams{}
	}
}

func splitPackages(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
	packages := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			packages = append(packages, f)
		}
	}
	return packages
}

// fallbackParse classifies unmatched input by keyword. Ambiguous input is
// resolved by the fixed priority create > install > git > show.
func fallbackParse(text string) (domain.Intent, domain.Params) {
	lower := strings.ToLower(text)
	params := domain.FreeTextParams{Text: text}

	switch {
	case containsAny(lower, "create", "new", "make"):
		return domain.IntentSuggestCreate, params
	case containsAny(lower, "install", "add", "get"):
		return domain.IntentSuggestInstall, params
	case strings.Contains(lower, "git"):
		return domain.IntentSuggestGit, params
	case containsAny(lower, "show", "list", "display"):
		return domain.IntentSuggestShow, params
	default:
		return domain.IntentUnknown, params
	}
}

func containsAny(text string, words ...string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}

var _ ports.IntentParser = (*RegexParser)(nil)
