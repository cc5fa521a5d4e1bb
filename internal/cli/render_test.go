package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/utpal5/Ticketingsystem/internal/authz"
	"github.com/utpal5/Ticketingsystem/internal/domain"
)

func TestParseScope(t *testing.T) {
	cases := []struct {
		in      string
		want    authz.Scope
		wantErr bool
	}{
		{in: "my", want: authz.ScopeOwn},
		{in: "own", want: authz.ScopeOwn},
		{in: "ASSIGNED", want: authz.ScopeAssigned},
		{in: "all", want: authz.ScopeAll},
		{in: "everything", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range cases {
		got, err := parseScope(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseScope(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseScope(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseScope(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseID(t *testing.T) {
	if _, err := parseID("abc"); err == nil {
		t.Error("expected error for non-numeric id")
	}
	if _, err := parseID("-4"); err == nil {
		t.Error("expected error for negative id")
	}
	id, err := parseID("42")
	if err != nil {
		t.Fatalf("parseID: %v", err)
	}
	if id != 42 {
		t.Errorf("parseID = %d, want 42", id)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 40); got != "short" {
		t.Errorf("truncate kept short string wrong: %q", got)
	}
	long := strings.Repeat("x", 50)
	got := truncate(long, 40)
	if len(got) != 40 || !strings.HasSuffix(got, "...") {
		t.Errorf("truncate(%d chars, 40) = %q", len(long), got)
	}
}

func TestRenderTickets(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	agent := domain.Identity{ID: 2, Username: "agent", Role: domain.RoleSupportAgent}
	tickets := []domain.Ticket{
		{
			ID:        7,
			Subject:   "Printer on fire",
			Status:    domain.TicketStatusInProgress,
			Priority:  domain.TicketPriorityUrgent,
			CreatedBy: domain.Identity{ID: 1, Username: "reporter"},
			AssignedTo: &agent,
			UpdatedAt: now,
		},
		{
			ID:        8,
			Subject:   "VPN drops",
			Status:    domain.TicketStatusOpen,
			Priority:  domain.TicketPriorityLow,
			CreatedBy: domain.Identity{ID: 1, Username: "reporter"},
			UpdatedAt: now,
		},
	}

	var buf bytes.Buffer
	renderTickets(&buf, tickets)
	out := buf.String()

	for _, want := range []string{"Printer on fire", "IN_PROGRESS", "agent", "VPN drops"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "-") {
		t.Errorf("unassigned ticket should render a dash:\n%s", out)
	}

	buf.Reset()
	renderTickets(&buf, nil)
	if !strings.Contains(buf.String(), "No tickets") {
		t.Errorf("empty list message missing: %q", buf.String())
	}
}

func TestRenderStats(t *testing.T) {
	var buf bytes.Buffer
	renderStats(&buf, authz.Stats{Open: 3, InProgress: 1, Resolved: 2, Closed: 4, Urgent: 2})
	out := buf.String()

	for _, want := range []string{"Open", "3", "Total", "10", "Urgent"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats output missing %q:\n%s", want, out)
		}
	}
}
