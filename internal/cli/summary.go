package cli

import "sort"

// categoryNamesByCount returns category names ordered by descending count,
// breaking ties alphabetically so summaries are stable.
func categoryNamesByCount(counts map[string]int) []string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}
