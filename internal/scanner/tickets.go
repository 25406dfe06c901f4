package scanner

import (
	"os"
	"path/filepath"
	"sort"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"

	"dpscan/internal/models"
)

var ticketFiles = []string{
	filepath.Join("Account", "tickets.json"),
	filepath.Join("Tickets", "tickets.json"),
	"tickets.json",
}

// parseTickets reads the optional support-ticket dump. Absence is the
// common case and yields empty stats.
func parseTickets(root string) models.TicketStats {
	stats := models.TicketStats{ByStatus: make(map[string]int)}
	for _, candidate := range ticketFiles {
		data, err := os.ReadFile(filepath.Join(root, candidate))
		if err != nil {
			continue
		}
		var raw []ticketSchema
		if err := json.Unmarshal(data, &raw); err != nil {
			continue
		}
		for _, t := range raw {
			ticket := models.Ticket{
				ID:           cast.ToString(t.ID),
				Status:       t.Status,
				Subject:      t.Subject,
				CreatedAt:    t.CreatedAt,
				MessageCount: len(t.Messages),
			}
			stats.Tickets = append(stats.Tickets, ticket)
			stats.ByStatus[ticket.Status]++
		}
		stats.Count = len(stats.Tickets)
		sort.Slice(stats.Tickets, func(i, j int) bool {
			return stats.Tickets[i].CreatedAt > stats.Tickets[j].CreatedAt
		})
		return stats
	}
	return stats
}
