package main

import (
	"fmt"
	"strings"

	"hours-dashboard/models"
	projectapimodels "hours-dashboard/models/api/project"

	"github.com/spf13/cobra"
)

// parseDate reads a YYYY-MM-DD flag; empty means today.
func parseDate(value string) (models.Date, error) {
	if value == "" {
		return models.Today(), nil
	}
	return models.ParseDate(value)
}

func (a *app) timeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "time",
		Short: "Log and update time entries",
	}
	cmd.AddCommand(a.timeAddCmd(), a.timeStatusCmd())
	return cmd
}

func (a *app) timeAddCmd() *cobra.Command {
	var (
		description string
		spent       float64
		priority    string
		status      string
		date        string
	)
	cmd := &cobra.Command{
		Use:   "add <project-id>",
		Short: "Log hours against a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDate(date)
			if err != nil {
				return err
			}
			request := projectapimodels.NewTimeEntry{
				Description: description,
				Hours:       spent,
				Priority:    projectapimodels.Priority(priority),
				Status:      projectapimodels.TimeEntryStatus(status),
				Date:        day,
			}
			if err := request.Validate(); err != nil {
				return err
			}
			if err := a.loadProjects(cmd.Context()); err != nil {
				return err
			}
			entry, err := a.client.Projects.AddTimeEntry(cmd.Context(), args[0], request)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s on %s as entry %s\n", hours(entry.Hours), entry.Date, entry.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&description, "desc", "d", "", "what was done")
	cmd.Flags().Float64Var(&spent, "hours", 0, "hours spent")
	cmd.Flags().StringVar(&priority, "priority", string(projectapimodels.MediumPriority), "low, medium, high or urgent")
	cmd.Flags().StringVar(&status, "status", string(projectapimodels.InProgressStatus), "entry status")
	cmd.Flags().StringVar(&date, "date", "", "work date, YYYY-MM-DD (default today)")
	return cmd
}

func (a *app) timeStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <project-id> <entry-id> <status>",
		Short: "Move a time entry to another status",
		Long:  `Statuses: pending-estimation, client-approved, in-progress, blocked, done. Any status may follow any other.`,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := projectapimodels.TimeEntryStatus(args[2])
			if err := status.Validate(); err != nil {
				return err
			}
			if err := a.loadProjects(cmd.Context()); err != nil {
				return err
			}
			entry, err := a.client.Projects.UpdateTimeEntry(cmd.Context(), args[0], args[1], projectapimodels.TimeEntryUpdate{Status: &status})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Entry %s is now %s\n", entry.ID, entry.Status.ToHuman())
			return nil
		},
	}
}

func (a *app) commentCmd() *cobra.Command {
	var client bool
	cmd := &cobra.Command{
		Use:   "comment <project-id> <entry-id> <text...>",
		Short: "Comment on a time entry",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			request := projectapimodels.CommentRequest{Content: strings.Join(args[2:], " "), IsClient: client}
			if err := request.Validate(); err != nil {
				return err
			}
			if err := a.loadProjects(cmd.Context()); err != nil {
				return err
			}
			comment, err := a.client.Projects.AddComment(cmd.Context(), args[0], args[1], request)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Comment %s added\n", comment.ID)
			return nil
		},
	}
	cmd.Flags().BoolVar(&client, "client", false, "mark the comment as written by the client")
	return cmd
}
