package authz

import (
	"math/rand"
	"testing"

	"github.com/utpal5/Ticketingsystem/internal/domain"
)

func ticket(status domain.TicketStatus, priority domain.TicketPriority) domain.Ticket {
	return domain.Ticket{Status: status, Priority: priority}
}

func TestDeriveStats(t *testing.T) {
	tickets := []domain.Ticket{
		ticket(domain.TicketStatusOpen, domain.TicketPriorityLow),
		ticket(domain.TicketStatusOpen, domain.TicketPriorityUrgent),
		ticket(domain.TicketStatusInProgress, domain.TicketPriorityMedium),
		ticket(domain.TicketStatusResolved, domain.TicketPriorityUrgent),
		ticket(domain.TicketStatusClosed, domain.TicketPriorityHigh),
		ticket(domain.TicketStatusClosed, domain.TicketPriorityUrgent),
	}

	got := DeriveStats(tickets)
	want := Stats{Open: 2, InProgress: 1, Resolved: 1, Closed: 2, Urgent: 3}
	if got != want {
		t.Fatalf("DeriveStats = %+v, want %+v", got, want)
	}
	if got.Total() != len(tickets) {
		t.Fatalf("status buckets sum to %d, want %d", got.Total(), len(tickets))
	}
}

func TestDeriveStatsEmpty(t *testing.T) {
	if got := DeriveStats(nil); got != (Stats{}) {
		t.Fatalf("DeriveStats(nil) = %+v, want zeros", got)
	}
	if got := DeriveStats([]domain.Ticket{}); got != (Stats{}) {
		t.Fatalf("DeriveStats(empty) = %+v, want zeros", got)
	}
}

func TestDeriveStatsOrderInvariant(t *testing.T) {
	statuses := []domain.TicketStatus{
		domain.TicketStatusOpen, domain.TicketStatusInProgress,
		domain.TicketStatusResolved, domain.TicketStatusClosed,
	}
	priorities := []domain.TicketPriority{
		domain.TicketPriorityLow, domain.TicketPriorityMedium,
		domain.TicketPriorityHigh, domain.TicketPriorityUrgent,
	}

	rng := rand.New(rand.NewSource(7))
	tickets := make([]domain.Ticket, 200)
	for i := range tickets {
		tickets[i] = ticket(statuses[rng.Intn(len(statuses))], priorities[rng.Intn(len(priorities))])
	}

	want := DeriveStats(tickets)
	if want.Total() != len(tickets) {
		t.Fatalf("status buckets sum to %d, want %d", want.Total(), len(tickets))
	}

	for trial := 0; trial < 10; trial++ {
		rng.Shuffle(len(tickets), func(i, j int) {
			tickets[i], tickets[j] = tickets[j], tickets[i]
		})
		if got := DeriveStats(tickets); got != want {
			t.Fatalf("shuffle %d: DeriveStats = %+v, want %+v", trial, got, want)
		}
	}
}
