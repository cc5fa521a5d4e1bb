package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/utpal5/Ticketingsystem/internal/authz"
	"github.com/utpal5/Ticketingsystem/internal/domain"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Summarize ticket counts for the current account",
	RunE: func(cmd *cobra.Command, args []string) error {
		identity, err := requireSession(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Dashboard for %s (%s)\n", identity.Username, identity.Role)

		tickets, err := a.api.MyTickets(cmd.Context())
		if err != nil {
			return err
		}
		renderStatsSection(out, "Your tickets", tickets)

		if authz.CanView(identity, authz.ScopeAssigned) {
			tickets, err = a.api.AssignedTickets(cmd.Context())
			if err != nil {
				return err
			}
			renderStatsSection(out, "Assigned to you", tickets)
		}

		if authz.CanView(identity, authz.ScopeAll) {
			tickets, err = a.api.AllTickets(cmd.Context())
			if err != nil {
				return err
			}
			renderStatsSection(out, "All tickets", tickets)
		}
		return nil
	},
}

func renderStatsSection(w io.Writer, title string, tickets []domain.Ticket) {
	fmt.Fprintf(w, "\n%s:\n", title)
	renderStats(w, authz.DeriveStats(tickets))
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
