package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kbamnote/patil-admin/internal/logger"
	"github.com/kbamnote/patil-admin/internal/session"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the admin API and store the session",
	Long: `Log in with your operator credentials. On success the bearer token and
your role are stored locally and reused by every command for the next
seven days, or until you run "patil-admin logout".`,
	Example: `  patil-admin login --email admin@patilassociates.in --password secret`,
	RunE:    runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	RunE:  runLogout,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)

	loginCmd.Flags().String("email", "", "Operator email address")
	loginCmd.Flags().String("password", "", "Operator password")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
}

func runLogin(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("login")

	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	gw, store, err := newGateway()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), appConfig.RequestTimeout)
	defer cancel()

	result, err := gw.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if err := store.Save(result.Token, result.Role); err != nil {
		return err
	}

	log.Info().Str("role", result.Role).Msg("Logged in")
	fmt.Printf("Logged in as %s (role: %s). Session valid until %s.\n",
		email, result.Role, time.Now().Add(session.TTL).Format("2006-01-02"))
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	_, store, err := newGateway()
	if err != nil {
		return err
	}
	if err := store.Clear(); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}
