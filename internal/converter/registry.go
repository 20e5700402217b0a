package converter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Lookup resolves a recipe name or one of its aliases
func Lookup(name string) (Info, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, info := range builtins {
		if info.Name == name {
			return info, nil
		}
		for _, alias := range info.Aliases {
			if alias == name {
				return info, nil
			}
		}
	}

	if suggestions := Suggest(name); len(suggestions) > 0 {
		return Info{}, fmt.Errorf("recipe not found: %s (did you mean %s?)", name, strings.Join(suggestions, ", "))
	}
	return Info{}, fmt.Errorf("recipe not found: %s", name)
}

// Suggest returns recipe names whose name or alias fuzzily matches query,
// closest first.
func Suggest(query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var (
		choices []string
		owners  []string
	)
	for _, info := range builtins {
		choices = append(choices, info.Name)
		owners = append(owners, info.Name)
		for _, alias := range info.Aliases {
			choices = append(choices, alias)
			owners = append(owners, info.Name)
		}
	}

	matches := fuzzy.RankFindNormalizedFold(query, choices)
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})

	seen := make(map[string]bool)
	var result []string
	for _, match := range matches {
		owner := owners[match.OriginalIndex]
		if !seen[owner] {
			seen[owner] = true
			result = append(result, owner)
		}
	}
	return result
}
