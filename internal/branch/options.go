package branch

import (
	"fmt"
	"sort"
	"strings"

	"ezgit.dev/ezgit/internal/git"
)

// Choice is one entry in an interactive branch selector. Value is what a
// selection resolves to: the bare name for a local branch, the
// "<remote>/<branch>" form for a remote-tracking branch.
type Choice struct {
	Display string
	Value   string
}

// SelectChoices builds the selector entries for all branches: local branches
// plus remote-tracking branches of the configured remote, deduplicated by
// value and sorted by display label. A branch that exists both locally and
// on the remote yields two entries, so the user always picks one side
// explicitly.
func SelectChoices(g *git.Git, remote string) ([]Choice, error) {
	names, err := g.AllBranches()
	if err != nil {
		return nil, err
	}

	prefix := remote + "/"
	seen := make(map[string]bool)
	var choices []Choice

	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		if short, ok := strings.CutPrefix(name, prefix); ok {
			choices = append(choices, Choice{
				Display: fmt.Sprintf("%s (%s)", short, remote),
				Value:   name,
			})
		} else {
			choices = append(choices, Choice{
				Display: fmt.Sprintf("%s (local)", name),
				Value:   name,
			})
		}
	}

	sort.Slice(choices, func(i, j int) bool {
		return choices[i].Display < choices[j].Display
	})

	return choices, nil
}

// Exclude returns choices without the entries whose value matches any of the
// given names.
func Exclude(choices []Choice, names ...string) []Choice {
	excluded := make(map[string]bool, len(names))
	for _, n := range names {
		excluded[n] = true
	}

	var kept []Choice
	for _, c := range choices {
		if !excluded[c.Value] {
			kept = append(kept, c)
		}
	}
	return kept
}
