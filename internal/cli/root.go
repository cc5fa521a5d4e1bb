// Package cli implements the helpdesk command line client.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/utpal5/Ticketingsystem/internal/apiclient"
	"github.com/utpal5/Ticketingsystem/internal/config"
	"github.com/utpal5/Ticketingsystem/internal/domain"
	"github.com/utpal5/Ticketingsystem/internal/observability"
	"github.com/utpal5/Ticketingsystem/internal/session"
)

// app holds the wired client dependencies shared by all commands.
type app struct {
	cfg      *config.ClientConfig
	logger   *zap.Logger
	api      *apiclient.Client
	sessions *session.Manager
}

var a *app

var rootCmd = &cobra.Command{
	Use:   "helpdesk",
	Short: "Command line client for the helpdesk ticketing service",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadClient()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logger, err := observability.NewLogger(cfg.Logger)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		store := session.NewFileStore(cfg.TokenPath)
		api := apiclient.New(cfg.BaseURL,
			apiclient.WithTimeout(cfg.Timeout()),
			apiclient.WithLogger(logger),
			apiclient.WithUnauthorizedHook(func() {
				// Mirror the browser behavior: any 401 ends the session.
				_ = store.Clear()
			}),
		)

		a = &app{
			cfg:      cfg,
			logger:   logger,
			api:      api,
			sessions: session.NewManager(api, store, logger),
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// requireSession restores the persisted session and fails when none is active.
func requireSession(cmd *cobra.Command) (*domain.Identity, error) {
	identity := a.sessions.Restore(cmd.Context())
	if identity == nil {
		return nil, errors.New("not logged in; run `helpdesk login` first")
	}
	return identity, nil
}
