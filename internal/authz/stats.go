package authz

import "github.com/utpal5/Ticketingsystem/internal/domain"

// Stats summarizes a ticket listing for the dashboard. Urgent counts
// priority, not status, so a ticket lands in one status bucket and may
// additionally land in Urgent.
type Stats struct {
	Open       int `json:"open"`
	InProgress int `json:"inProgress"`
	Resolved   int `json:"resolved"`
	Closed     int `json:"closed"`
	Urgent     int `json:"urgent"`
}

// Total returns the number of tickets across all status buckets.
func (s Stats) Total() int {
	return s.Open + s.InProgress + s.Resolved + s.Closed
}

// DeriveStats partitions tickets by status in a single pass and counts
// urgent-priority tickets alongside. A nil or empty slice yields zeros.
func DeriveStats(tickets []domain.Ticket) Stats {
	var stats Stats
	for i := range tickets {
		switch tickets[i].Status {
		case domain.TicketStatusOpen:
			stats.Open++
		case domain.TicketStatusInProgress:
			stats.InProgress++
		case domain.TicketStatusResolved:
			stats.Resolved++
		case domain.TicketStatusClosed:
			stats.Closed++
		}
		if tickets[i].Priority == domain.TicketPriorityUrgent {
			stats.Urgent++
		}
	}
	return stats
}
