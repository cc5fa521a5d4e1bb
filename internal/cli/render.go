package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/utpal5/Ticketingsystem/internal/authz"
	"github.com/utpal5/Ticketingsystem/internal/domain"
)

const timeLayout = "2006-01-02 15:04"

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func renderTickets(w io.Writer, tickets []domain.Ticket) {
	if len(tickets) == 0 {
		fmt.Fprintln(w, "No tickets found.")
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tSUBJECT\tSTATUS\tPRIORITY\tCREATED BY\tASSIGNED TO\tUPDATED")
	for _, t := range tickets {
		assignee := "-"
		if t.AssignedTo != nil {
			assignee = t.AssignedTo.Username
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, truncate(t.Subject, 40), t.Status, t.Priority,
			t.CreatedBy.Username, assignee, t.UpdatedAt.Format(timeLayout))
	}
	tw.Flush()
}

func renderTicket(w io.Writer, t *domain.Ticket) {
	tw := newTable(w)
	fmt.Fprintf(tw, "ID:\t%d\n", t.ID)
	fmt.Fprintf(tw, "Subject:\t%s\n", t.Subject)
	fmt.Fprintf(tw, "Status:\t%s\n", t.Status)
	fmt.Fprintf(tw, "Priority:\t%s\n", t.Priority)
	fmt.Fprintf(tw, "Created by:\t%s (%s)\n", t.CreatedBy.FullName(), t.CreatedBy.Username)
	if t.AssignedTo != nil {
		fmt.Fprintf(tw, "Assigned to:\t%s (%s)\n", t.AssignedTo.FullName(), t.AssignedTo.Username)
	} else {
		fmt.Fprintf(tw, "Assigned to:\t-\n")
	}
	fmt.Fprintf(tw, "Created:\t%s\n", t.CreatedAt.Format(timeLayout))
	fmt.Fprintf(tw, "Updated:\t%s\n", t.UpdatedAt.Format(timeLayout))
	tw.Flush()
	fmt.Fprintf(w, "\n%s\n", t.Description)
}

func renderComments(w io.Writer, comments []domain.Comment) {
	if len(comments) == 0 {
		fmt.Fprintln(w, "No comments.")
		return
	}
	for _, c := range comments {
		fmt.Fprintf(w, "[%s] %s:\n%s\n\n",
			c.CreatedAt.Format(timeLayout), c.Author.Username, c.Content)
	}
}

func renderIdentities(w io.Writer, users []domain.Identity) {
	if len(users) == 0 {
		fmt.Fprintln(w, "No users found.")
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tUSERNAME\tNAME\tEMAIL\tROLE\tCREATED")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			u.ID, u.Username, u.FullName(), u.Email, u.Role, u.CreatedAt.Format(timeLayout))
	}
	tw.Flush()
}

func renderStats(w io.Writer, stats authz.Stats) {
	tw := newTable(w)
	fmt.Fprintln(tw, "STATUS\tCOUNT")
	fmt.Fprintf(tw, "Open\t%d\n", stats.Open)
	fmt.Fprintf(tw, "In progress\t%d\n", stats.InProgress)
	fmt.Fprintf(tw, "Resolved\t%d\n", stats.Resolved)
	fmt.Fprintf(tw, "Closed\t%d\n", stats.Closed)
	fmt.Fprintf(tw, "Total\t%d\n", stats.Total())
	fmt.Fprintf(tw, "Urgent\t%d\n", stats.Urgent)
	tw.Flush()
}

func renderIdentity(w io.Writer, identity *domain.Identity) {
	tw := newTable(w)
	fmt.Fprintf(tw, "ID:\t%d\n", identity.ID)
	fmt.Fprintf(tw, "Username:\t%s\n", identity.Username)
	fmt.Fprintf(tw, "Name:\t%s\n", identity.FullName())
	fmt.Fprintf(tw, "Email:\t%s\n", identity.Email)
	fmt.Fprintf(tw, "Role:\t%s\n", identity.Role)
	fmt.Fprintf(tw, "Member since:\t%s\n", identity.CreatedAt.Format(timeLayout))
	tw.Flush()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}
