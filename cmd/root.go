package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kbamnote/patil-admin/internal/api"
	"github.com/kbamnote/patil-admin/internal/config"
	"github.com/kbamnote/patil-admin/internal/logger"
	"github.com/kbamnote/patil-admin/internal/session"
)

var version = "1.0.0"

var appConfig *config.Config

var rootCmd = &cobra.Command{
	Use:   "patil-admin",
	Short: "Patil Associates admin CLI - manage orders, bills, and rooms",
	Long: `Patil Associates admin CLI talks to the Patil Associates backend API
to manage restaurant orders and bills, and to browse hotel rooms.

Log in first with "patil-admin login"; the session is kept for seven days.
The API host can be changed with PATIL_API_BASE_URL.`,
	Version: version,
}

// Execute runs the CLI with the given configuration.
func Execute(cfg *config.Config) {
	appConfig = cfg
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, api.ErrUnauthorized) || errors.Is(err, session.ErrNoSession) || errors.Is(err, session.ErrSessionExpired) {
			fmt.Fprintln(os.Stderr, "Run \"patil-admin login\" to authenticate.")
		}
		os.Exit(1)
	}
}

// newGateway wires a gateway to the configured host with the persisted
// session attached.
func newGateway() (*api.Gateway, session.Store, error) {
	store, err := session.NewFileStore(appConfig.SessionFile)
	if err != nil {
		return nil, nil, err
	}
	return api.New(appConfig.APIBaseURL, appConfig.RequestTimeout, store), store, nil
}

// requireSession is the route guard: commands that need a credential fail up
// front instead of bouncing off the server with a generic error.
func requireSession(store session.Store) error {
	_, err := store.Current()
	return err
}
