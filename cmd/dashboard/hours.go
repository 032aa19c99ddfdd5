package main

import (
	"fmt"

	projectapimodels "hours-dashboard/models/api/project"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func (a *app) hoursCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hours",
		Short: "Request and review extra hours on time-based projects",
	}
	cmd.AddCommand(a.hoursListCmd(), a.hoursRequestCmd(), a.hoursReviewCmd(), a.hoursCancelCmd())
	return cmd
}

func (a *app) hoursListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <project-id>",
		Short: "List a project's hour requests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadProjects(cmd.Context()); err != nil {
				return err
			}
			requests, err := a.client.Projects.FetchHourRequests(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			tw := newTable(cmd.OutOrStdout(), "ID", "HOURS", "STATUS", "BY", "REQUESTED", "NEEDED BY", "REASON")
			for _, r := range requests {
				by := r.RequestedBy
				if r.Requester != nil {
					by = r.Requester.Name
				}
				row(tw, r.ID, hours(r.Hours), r.Status, by, humanize.Time(r.RequestedAt), r.NeededBy, r.Reason)
			}
			return tw.Flush()
		},
	}
}

func (a *app) hoursRequestCmd() *cobra.Command {
	var (
		requested float64
		reason    string
		neededBy  string
	)
	cmd := &cobra.Command{
		Use:   "request <project-id>",
		Short: "Ask for more hours",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDate(neededBy)
			if err != nil {
				return err
			}
			request := projectapimodels.CreateHourRequest{Hours: requested, Reason: reason, NeededBy: day}
			if err := request.Validate(); err != nil {
				return err
			}
			if err := a.loadProjects(cmd.Context()); err != nil {
				return err
			}
			created, err := a.client.Projects.CreateHourRequest(cmd.Context(), args[0], request)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Requested %s as %s, waiting for review\n", hours(created.Hours), created.ID)
			return nil
		},
	}
	cmd.Flags().Float64Var(&requested, "hours", 0, "hours needed")
	cmd.Flags().StringVar(&reason, "reason", "", "why the hours are needed")
	cmd.Flags().StringVar(&neededBy, "needed-by", "", "date, YYYY-MM-DD (default today)")
	return cmd
}

func (a *app) hoursReviewCmd() *cobra.Command {
	var notes string
	cmd := &cobra.Command{
		Use:       "review <project-id> <request-id> approve|reject",
		Short:     "Approve or reject a pending hour request",
		Args:      cobra.ExactArgs(3),
		ValidArgs: []string{"approve", "reject"},
		RunE: func(cmd *cobra.Command, args []string) error {
			review := projectapimodels.ReviewHourRequest{ReviewNotes: notes}
			switch args[2] {
			case "approve":
				review.Status = projectapimodels.HourRequestApproved
			case "reject":
				review.Status = projectapimodels.HourRequestRejected
			default:
				return errors.Errorf("decision must be approve or reject, got %q", args[2])
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			if !a.client.Auth.Permissions().CanApproveHours {
				return errors.New("your role cannot review hour requests")
			}
			if err := a.loadProjects(cmd.Context()); err != nil {
				return err
			}
			reviewed, err := a.client.Projects.ReviewHourRequest(cmd.Context(), args[0], args[1], review)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Request %s %s\n", reviewed.ID, reviewed.Status)
			if project, ok := a.client.Projects.Project(args[0]); ok {
				if billing, ok := project.Billing.(projectapimodels.TimeBased); ok {
					fmt.Fprintf(cmd.OutOrStdout(), "Project now has %s allocated\n", hours(billing.TotalHours))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&notes, "notes", "", "review notes")
	return cmd
}

func (a *app) hoursCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <project-id> <request-id>",
		Short: "Withdraw a pending hour request",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadProjects(cmd.Context()); err != nil {
				return err
			}
			if err := a.client.Projects.DeleteHourRequest(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Request %s withdrawn\n", args[1])
			return nil
		},
	}
}
