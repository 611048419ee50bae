package mealplan

import "strings"

// noiseTokens are cell lines that are layout labels rather than
// food: the category headers in both languages plus the corner
// station labels. Matching is against normalizeLabel output.
var noiseTokens = buildNoiseTokens()

func buildNoiseTokens() map[string]bool {
	tokens := map[string]bool{}
	for _, family := range [][]string{
		breakfastWords, lunchWords, dinnerWords, nightWords, saladWords,
	} {
		for _, w := range family {
			tokens[normalizeLabel(w)] = true
		}
	}
	for _, w := range []string{"a코너", "b코너"} {
		tokens[normalizeLabel(w)] = true
	}
	return tokens
}

// splitMenuItems turns one raw cell into menu-item candidates: split
// on newlines, trim, drop empties and noise tokens. Order within the
// cell is preserved.
func splitMenuItems(c cell) []string {
	text := c.asText()
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.ReplaceAll(text, " ", " ")

	var items []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if noiseTokens[normalizeLabel(line)] {
			continue
		}
		items = append(items, line)
	}
	return items
}

// dedupItems drops duplicate entries (case-sensitive, trimmed),
// keeping the first occurrence in order. Running it twice changes
// nothing.
func dedupItems(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
