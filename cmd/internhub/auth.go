package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"internhub/internal/session"
	"internhub/internal/view"
)

func newLoginCmd(a *app) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and keep the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := a.dialog()
			var err error
			if email == "" {
				if email, err = d.Prompt("email"); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = d.Prompt("password"); err != nil {
					return err
				}
			}
			email = strings.TrimSpace(email)
			if email == "" || password == "" {
				return errors.New("email and password are required")
			}

			result, err := a.api.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			sess, err := a.accessor.Login(cmd.Context(), result, email)
			if err != nil {
				return err
			}
			a.info("logged in as %s (%s)", displayName(sess), sess.Role)
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password (prompted when empty)")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.accessor.Logout(cmd.Context()); err != nil {
				return err
			}
			a.info("logged out")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, identity, err := a.accessor.Current(cmd.Context())
			if errors.Is(err, session.ErrNotFound) {
				a.info("not logged in")
				return nil
			}
			if err != nil && !errors.Is(err, session.ErrExpired) {
				return err
			}

			card := &view.Card{Title: displayName(sess)}
			card.Add("Email", sess.Email)
			card.Add("Role", string(sess.Role))
			card.Add("User ID", sess.UserID)
			if !identity.ExpiresAt.IsZero() {
				card.Add("Expires", identity.ExpiresAt.Local().Format(time.RFC1123))
			}
			fmt.Fprint(a.out, card.Render(a.styles))
			return err
		},
	}
}

func displayName(s session.Session) string {
	if s.Name != "" {
		return s.Name
	}
	return s.Email
}
