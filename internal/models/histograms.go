package models

import "time"

// Histograms buckets messages by time of day, day of week (Monday first),
// month of year and calendar year. Messages without a parseable timestamp
// are never observed here, so bucket sums can undershoot the message count
// but never exceed it.
type Histograms struct {
	Hours  [24]int     `json:"hours"`
	Days   [7]int      `json:"days"`
	Months [12]int     `json:"months"`
	Years  map[int]int `json:"years"`
}

func NewHistograms() Histograms {
	return Histograms{Years: make(map[int]int)}
}

func (h *Histograms) Observe(t time.Time) {
	h.Hours[t.Hour()]++
	h.Days[(int(t.Weekday())+6)%7]++
	h.Months[int(t.Month())-1]++
	if h.Years == nil {
		h.Years = make(map[int]int)
	}
	h.Years[t.Year()]++
}

func (h *Histograms) Merge(other *Histograms) {
	for i := range h.Hours {
		h.Hours[i] += other.Hours[i]
	}
	for i := range h.Days {
		h.Days[i] += other.Days[i]
	}
	for i := range h.Months {
		h.Months[i] += other.Months[i]
	}
	if h.Years == nil {
		h.Years = make(map[int]int)
	}
	for y, c := range other.Years {
		h.Years[y] += c
	}
}

// Total is the number of observed (timestamp-parseable) messages.
func (h *Histograms) Total() int {
	sum := 0
	for _, c := range h.Hours {
		sum += c
	}
	return sum
}
