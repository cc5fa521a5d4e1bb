package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/utpal5/Ticketingsystem/internal/apiclient"
	"github.com/utpal5/Ticketingsystem/internal/authz"
	"github.com/utpal5/Ticketingsystem/internal/domain"
)

var ticketsCmd = &cobra.Command{
	Use:   "tickets",
	Short: "Work with tickets",
}

var ticketsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tickets visible to the current account",
	RunE: func(cmd *cobra.Command, args []string) error {
		identity, err := requireSession(cmd)
		if err != nil {
			return err
		}

		scopeFlag, _ := cmd.Flags().GetString("scope")
		scope, err := parseScope(scopeFlag)
		if err != nil {
			return err
		}
		if !authz.CanView(identity, scope) {
			return fmt.Errorf("role %s cannot list %s tickets", identity.Role, scopeFlag)
		}

		var tickets []domain.Ticket
		switch scope {
		case authz.ScopeOwn:
			tickets, err = a.api.MyTickets(cmd.Context())
		case authz.ScopeAssigned:
			tickets, err = a.api.AssignedTickets(cmd.Context())
		case authz.ScopeAll:
			tickets, err = a.api.AllTickets(cmd.Context())
		}
		if err != nil {
			return err
		}

		renderTickets(cmd.OutOrStdout(), tickets)
		return nil
	},
}

var ticketsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a ticket and its comments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireSession(cmd); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		ticket, err := a.api.Ticket(cmd.Context(), id)
		if err != nil {
			return err
		}
		comments, err := a.api.TicketComments(cmd.Context(), id)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		renderTicket(out, ticket)
		fmt.Fprintf(out, "\nComments (%d):\n", len(comments))
		renderComments(out, comments)
		return nil
	},
}

var ticketsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Open a new ticket",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireSession(cmd); err != nil {
			return err
		}

		req := apiclient.CreateTicketRequest{}
		req.Subject, _ = cmd.Flags().GetString("subject")
		req.Description, _ = cmd.Flags().GetString("description")
		priority, _ := cmd.Flags().GetString("priority")
		req.Priority = domain.TicketPriority(strings.ToUpper(priority))

		if req.Subject == "" || req.Description == "" {
			return fmt.Errorf("--subject and --description are required")
		}
		if !req.Priority.Valid() {
			return fmt.Errorf("invalid priority %q (LOW, MEDIUM, HIGH, URGENT)", priority)
		}

		ticket, err := a.api.CreateTicket(cmd.Context(), req)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Ticket #%d created.\n", ticket.ID)
		return nil
	},
}

var ticketsStatusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Change a ticket's status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		identity, err := requireSession(cmd)
		if err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		status := domain.TicketStatus(strings.ToUpper(args[1]))
		if !status.Valid() {
			return fmt.Errorf("invalid status %q (OPEN, IN_PROGRESS, RESOLVED, CLOSED)", args[1])
		}

		ticket, err := a.api.Ticket(cmd.Context(), id)
		if err != nil {
			return err
		}
		if !authz.CanChangeStatus(identity, ticket) {
			return fmt.Errorf("you are not allowed to change the status of ticket #%d", id)
		}

		updated, err := a.api.UpdateTicketStatus(cmd.Context(), id, status)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Ticket #%d is now %s.\n", updated.ID, updated.Status)
		return nil
	},
}

var ticketsAssignCmd = &cobra.Command{
	Use:   "assign <id> <agent-id>",
	Short: "Assign a ticket to a support agent",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		identity, err := requireSession(cmd)
		if err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		agentID, err := parseID(args[1])
		if err != nil {
			return err
		}
		ticket, err := a.api.Ticket(cmd.Context(), id)
		if err != nil {
			return err
		}
		if !authz.CanAssign(identity, ticket) {
			return fmt.Errorf("only administrators can assign tickets")
		}

		updated, err := a.api.AssignTicket(cmd.Context(), id, agentID)
		if err != nil {
			return err
		}

		assignee := "-"
		if updated.AssignedTo != nil {
			assignee = updated.AssignedTo.Username
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Ticket #%d assigned to %s.\n", updated.ID, assignee)
		return nil
	},
}

var ticketsCommentCmd = &cobra.Command{
	Use:   "comment <id> <text>",
	Short: "Add a comment to a ticket",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		identity, err := requireSession(cmd)
		if err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		content := strings.TrimSpace(strings.Join(args[1:], " "))
		if content == "" {
			return fmt.Errorf("comment text must not be empty")
		}

		ticket, err := a.api.Ticket(cmd.Context(), id)
		if err != nil {
			return err
		}
		if !authz.CanComment(identity, ticket) {
			return fmt.Errorf("you are not allowed to comment on ticket #%d", id)
		}

		if _, err := a.api.AddComment(cmd.Context(), id, content); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Comment added to ticket #%d.\n", id)
		return nil
	},
}

func parseScope(s string) (authz.Scope, error) {
	switch strings.ToLower(s) {
	case "my", "own":
		return authz.ScopeOwn, nil
	case "assigned":
		return authz.ScopeAssigned, nil
	case "all":
		return authz.ScopeAll, nil
	default:
		return "", fmt.Errorf("invalid scope %q (my, assigned, all)", s)
	}
}

func init() {
	ticketsListCmd.Flags().String("scope", "my", "tickets to list: my, assigned, or all")

	ticketsCreateCmd.Flags().String("subject", "", "short summary")
	ticketsCreateCmd.Flags().String("description", "", "full problem description")
	ticketsCreateCmd.Flags().String("priority", "MEDIUM", "LOW, MEDIUM, HIGH, or URGENT")

	ticketsCmd.AddCommand(ticketsListCmd, ticketsShowCmd, ticketsCreateCmd,
		ticketsStatusCmd, ticketsAssignCmd, ticketsCommentCmd)
	rootCmd.AddCommand(ticketsCmd)
}
