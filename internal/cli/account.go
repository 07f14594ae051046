package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nanambeah/MedPrep-Ghana/internal/access"
	"github.com/nanambeah/MedPrep-Ghana/internal/user"
)

func newLoginCmd(app *App) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login [email]",
		Short: "Sign in with an email address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.Users.Login(cmd.Context(), user.LoginDTO{Email: args[0], Password: password})
			if err != nil {
				return err
			}
			if err := app.Account.SignIn(cmd.Context(), u); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Signed in as %s (%s)\n", u.Email, u.Role)
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "Admin password")
	return cmd
}

func newRegisterCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "register [name] [email]",
		Short: "Create an account and sign in",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.Users.Register(cmd.Context(), user.RegisterDTO{Name: args[0], Email: args[1]})
			if err != nil {
				return err
			}
			if err := app.Account.SignIn(cmd.Context(), u); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Welcome, %s\n", u.Name)
			return nil
		},
	}
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Account.SignOut(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "👋 Signed out")
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user and their access",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			u := app.Account.Current()
			if u == nil {
				fmt.Fprintln(out, "Not signed in")
				return nil
			}
			fmt.Fprintf(out, "%s <%s>\n", u.Name, u.Email)
			fmt.Fprintf(out, "Role:         %s\n", u.Role)
			fmt.Fprintf(out, "Subscription: %s\n", u.SubscriptionStatus)
			fmt.Fprintf(out, "Access:       %s\n", access.LevelFor(u))
			return nil
		},
	}
}

func newSubscribeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "subscribe [active|expired|none]",
		Short: "Set the subscription status of the signed-in user",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := user.SubscriptionActive
			if len(args) == 1 {
				status = user.SubscriptionStatus(strings.ToLower(args[0]))
			}
			if err := app.Account.UpdateSubscription(cmd.Context(), status); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Subscription is now %s\n", status)
			return nil
		},
	}
}
