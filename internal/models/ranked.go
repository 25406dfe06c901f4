package models

import "sort"

type RankedEntry struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// RankedList is a count-descending, length-capped view over a frequency
// table. Produced once, immutable afterwards.
type RankedList []RankedEntry

// EmojiEntry is a ranked custom emoji resolved for display: name and id
// come from the raw token, ImageURL prefers a local package asset over
// the CDN template.
type EmojiEntry struct {
	Name     string `json:"name"`
	ID       string `json:"id"`
	Count    int    `json:"count"`
	Animated bool   `json:"animated"`
	ImageURL string `json:"image_url"`
}

// Rank sorts a frequency table count-descending and truncates to n.
// Equal counts break ties lexicographically on the label so two scans of
// the same export always produce the same list.
func Rank(table FreqTable, n int) RankedList {
	return RankFiltered(table, n, nil)
}

// RankFiltered is Rank with an entry filter applied before sorting.
func RankFiltered(table FreqTable, n int, keep func(label string) bool) RankedList {
	entries := make(RankedList, 0, len(table))
	for label, count := range table {
		if keep != nil && !keep(label) {
			continue
		}
		entries = append(entries, RankedEntry{Label: label, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Label < entries[j].Label
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
