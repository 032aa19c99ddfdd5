package main

import (
	"fmt"

	"hours-dashboard/models"
	userapimodels "hours-dashboard/models/api/user"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func (a *app) requireUserAdmin() error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	if !a.client.Auth.Permissions().CanManageUsers {
		return errors.New("your role cannot manage users")
	}
	return nil
}

func (a *app) usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireUserAdmin(); err != nil {
				return err
			}
			if err := a.client.Users.FetchUsers(cmd.Context()); err != nil {
				return err
			}
			tw := newTable(cmd.OutOrStdout(), "ID", "NAME", "EMAIL", "ROLE", "STATUS", "LAST LOGIN")
			for _, u := range a.client.Users.Users() {
				lastLogin := "never"
				if u.LastLogin != nil {
					lastLogin = humanize.Time(*u.LastLogin)
				}
				row(tw, u.ID, u.Name, u.Email, u.Role.ToHuman(), u.Status.ToHuman(), lastLogin)
			}
			return tw.Flush()
		},
	}
	cmd.AddCommand(a.userCreateCmd(), a.userDeleteCmd(), a.passwordCmd())
	return cmd
}

func (a *app) userCreateCmd() *cobra.Command {
	var name, email, role, password string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			request := userapimodels.CreateUser{
				Name:     name,
				Email:    email,
				Role:     models.UserRole(role),
				Status:   models.UserActiveStatus,
				Password: password,
				Settings: userapimodels.Settings{Theme: models.LightTheme, Notifications: true},
			}
			if err := request.Validate(); err != nil {
				return err
			}
			if err := a.requireUserAdmin(); err != nil {
				return err
			}
			user, err := a.client.Users.CreateUser(cmd.Context(), request)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%s) as %s\n", user.Name, user.Role.ToHuman(), user.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&email, "email", "", "email used to sign in")
	cmd.Flags().StringVar(&role, "role", string(models.RegularUserRole), "admin, manager or user")
	cmd.Flags().StringVar(&password, "password", "", "initial password")
	return cmd
}

func (a *app) userDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <user-id>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireUserAdmin(); err != nil {
				return err
			}
			if current := a.client.Auth.CurrentUser(); current != nil && current.ID == args[0] {
				return errors.New("you cannot delete your own account")
			}
			if err := a.client.Users.DeleteUser(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "User %s deleted\n", args[0])
			return nil
		},
	}
}

// passwordCmd changes the signed-in user's own password.
func (a *app) passwordCmd() *cobra.Command {
	var current, next string
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Change your password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			request := userapimodels.PasswordUpdate{CurrentPassword: current, NewPassword: next}
			if err := request.Validate(); err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			user := a.client.Auth.CurrentUser()
			if err := a.client.Users.UpdatePassword(cmd.Context(), user.ID, request); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Password changed")
			return nil
		},
	}
	cmd.Flags().StringVar(&current, "current", "", "current password")
	cmd.Flags().StringVar(&next, "new", "", "new password")
	return cmd
}
