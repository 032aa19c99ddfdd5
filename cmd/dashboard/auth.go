package main

import (
	"fmt"
	"strings"

	"hours-dashboard/models"
	userapimodels "hours-dashboard/models/api/user"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func (a *app) loginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and keep the session for later commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.Auth.Login(cmd.Context(), email, password); err != nil {
				return err
			}
			user := a.client.Auth.CurrentUser()
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", user.Name, user.Role.ToHuman())
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func (a *app) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.client.Auth.Logout(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func (a *app) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user and what they may do",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			user := a.client.Auth.CurrentUser()
			perms := a.client.Auth.Permissions()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s <%s>\n", user.Name, user.Email)
			fmt.Fprintf(out, "Role:   %s\n", user.Role.ToHuman())
			fmt.Fprintf(out, "Theme:  %s\n", a.client.Auth.State().Theme)
			if user.LastLogin != nil {
				fmt.Fprintf(out, "Login:  %s\n", humanize.Time(*user.LastLogin))
			}
			fmt.Fprintf(out, "Access: %s\n", strings.Join(permissionNames(perms), ", "))
			return nil
		},
	}
}

func permissionNames(p models.UserPermissions) []string {
	names := []string{}
	for _, item := range []struct {
		ok   bool
		name string
	}{
		{p.CanManageProjects, "projects"},
		{p.CanManageUsers, "users"},
		{p.CanManageExpenses, "expenses"},
		{p.CanApproveHours, "hour approvals"},
		{p.CanViewReports, "reports"},
	} {
		if item.ok {
			names = append(names, item.name)
		}
	}
	if len(names) == 0 {
		names = append(names, "read only")
	}
	return names
}

func (a *app) themeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark]",
		Short:     "Toggle or set the color theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(models.LightTheme), string(models.DarkTheme)},
		RunE: func(cmd *cobra.Command, args []string) error {
			var theme models.Theme
			if len(args) == 0 {
				var err error
				if theme, err = a.client.Auth.ToggleTheme(); err != nil {
					return err
				}
			} else {
				theme = models.Theme(args[0])
				if theme != models.LightTheme && theme != models.DarkTheme {
					return errors.Errorf("unknown theme %q", args[0])
				}
				if err := a.setTheme(cmd, theme); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Theme: %s\n", theme)
			return nil
		},
	}
}

// setTheme saves the theme in the user's settings when signed in, locally otherwise.
func (a *app) setTheme(cmd *cobra.Command, theme models.Theme) error {
	if a.client.Auth.IsAuthenticated() {
		return a.client.Auth.UpdateUserSettings(cmd.Context(), userapimodels.SettingsUpdate{Theme: &theme})
	}
	if a.client.Auth.State().Theme == theme {
		return nil
	}
	_, err := a.client.Auth.ToggleTheme()
	return err
}
