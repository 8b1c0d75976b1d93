// Package resolve maps free-form region and season names onto the typed
// table enums, tolerating typos and partial input from callers.
package resolve

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/IT-Learning-Consulting/river-traveller/internal/tables"
)

// Region resolves input to a region. Returns false for empty input, no
// plausible match, or an ambiguous tie.
func Region(input string) (tables.Region, bool) {
	candidates := make([]string, 0, len(tables.Regions()))
	for _, region := range tables.Regions() {
		candidates = append(candidates, string(region))
	}
	match, ok := bestMatch(input, candidates)
	return tables.Region(match), ok
}

// Season resolves input to a season under the same rules as Region.
func Season(input string) (tables.Season, bool) {
	candidates := make([]string, 0, len(tables.Seasons()))
	for _, season := range tables.Seasons() {
		candidates = append(candidates, string(season))
	}
	match, ok := bestMatch(input, candidates)
	return tables.Season(match), ok
}

func bestMatch(input string, candidates []string) (string, bool) {
	token := normalise(input)
	if token == "" {
		return "", false
	}

	type scored struct {
		val   string
		score float64
	}

	results := make([]scored, 0, len(candidates))
	for _, cand := range candidates {
		score := 0.0
		switch {
		case token == cand:
			score = 1.0
		case strings.HasPrefix(cand, token) && len(token) >= 2:
			score = 0.9
		default:
			dist := levenshtein.ComputeDistance(token, cand)
			if dist > distanceLimit(len(cand)) {
				continue
			}
			score = 0.72 - (0.08 * float64(dist))
		}
		results = append(results, scored{val: cand, score: score})
	}
	if len(results) == 0 {
		return "", false
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score == results[j].score {
			return results[i].val < results[j].val
		}
		return results[i].score > results[j].score
	})

	best := results[0]
	if best.score < 0.5 {
		return "", false
	}
	if len(results) > 1 && best.score-results[1].score < 0.05 && best.score < 1.0 {
		return "", false
	}
	return best.val, true
}

func distanceLimit(candidateLen int) int {
	if candidateLen <= 4 {
		return 1
	}
	if candidateLen <= 8 {
		return 2
	}
	return 3
}

func normalise(input string) string {
	token := strings.ToLower(strings.TrimSpace(input))
	token = strings.ReplaceAll(token, " ", "_")
	return strings.ReplaceAll(token, "-", "_")
}
