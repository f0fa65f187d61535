package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/callmegreg/azdo-codeql-enable/internal/types"
)

// CompileWildcard converts a shell-style wildcard pattern into an anchored,
// case-insensitive regular expression. '*' matches any run of characters,
// '?' matches a single character, everything else is literal.
func CompileWildcard(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString("(?i)^")
	for _, r := range pattern {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("invalid repository filter %q: %w", pattern, err)
	}
	return re, nil
}

// FilterRepositories retains the repositories whose names match the wildcard
// pattern. An empty pattern keeps everything.
func FilterRepositories(repos []types.Repository, pattern string) ([]types.Repository, error) {
	if pattern == "" {
		return repos, nil
	}

	re, err := CompileWildcard(pattern)
	if err != nil {
		return nil, err
	}

	var matched []types.Repository
	for _, repo := range repos {
		if re.MatchString(repo.Name) {
			matched = append(matched, repo)
		}
	}

	return matched, nil
}
