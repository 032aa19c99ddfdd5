package main

import (
	"context"
	"fmt"
	"time"

	"hours-dashboard/lib/backend"
	"hours-dashboard/lib/metrics"
	projectapimodels "hours-dashboard/models/api/project"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// loadProjects refreshes the project list; every project command starts here.
func (a *app) loadProjects(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	return a.client.Projects.FetchProjects(ctx)
}

// loadProject refreshes one accessible project with its tracker tasks and summarizes it.
func (a *app) loadProject(ctx context.Context, projectID string) (*projectapimodels.Project, metrics.Summary, error) {
	if err := a.loadProjects(ctx); err != nil {
		return nil, metrics.Summary{}, err
	}
	if !a.client.Projects.HasProjectAccess(projectID) {
		return nil, metrics.Summary{}, errors.Wrapf(backend.ErrForbidden, "no access to project %s", projectID)
	}
	if _, err := a.client.Projects.FetchTrackerTasks(ctx, projectID); err != nil {
		return nil, metrics.Summary{}, err
	}
	project, ok := a.client.Projects.Project(projectID)
	if !ok {
		return nil, metrics.Summary{}, backend.NotFound("project", projectID)
	}
	summary, err := a.client.Projects.Metrics(projectID)
	return project, summary, err
}

func (a *app) projectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "List the projects you can see",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.loadProjects(ctx); err != nil {
				return err
			}
			tw := newTable(cmd.OutOrStdout(), "ID", "NAME", "CLIENT", "TYPE", "STATUS", "PROGRESS", "")
			for _, p := range a.client.Projects.AccessibleProjects() {
				if _, err := a.client.Projects.FetchTrackerTasks(ctx, p.ID); err != nil {
					return err
				}
				summary, err := a.client.Projects.Metrics(p.ID)
				if err != nil {
					return err
				}
				row(tw, p.ID, p.Name, p.Client, p.Type(), p.Status, percent(summary.Progress), usageMark(summary.UsageLevel))
			}
			return tw.Flush()
		},
	}
}

func (a *app) projectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "project <id>",
		Short: "Show a project's metrics, recent work and expenses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, summary, err := a.loadProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s for %s (%s, %s)\n", project.Name, project.Client, project.Type(), project.Status)
			fmt.Fprintf(out, "%s to %s\n", project.StartDate, project.EndDate)
			if project.Epic != nil {
				fmt.Fprintf(out, "Epic: %s %s\n", project.Epic.Key, project.Epic.Name)
			}
			fmt.Fprintln(out)
			printSummary(cmd, summary)

			fmt.Fprintln(out, "\nTime entries")
			tw := newTable(out, "ID", "DATE", "HOURS", "PRIORITY", "STATUS", "COMMENTS", "DESCRIPTION")
			for _, e := range project.TimeEntries {
				row(tw, e.ID, e.Date, hours(e.Hours), e.Priority.ToHuman(), e.Status.ToHuman(), len(e.Comments), e.Description)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			fmt.Fprintln(out, "\nExpenses")
			tw = newTable(out, "ID", "DATE", "AMOUNT", "PAID", "STATUS", "CATEGORY", "DESCRIPTION")
			for _, e := range project.Expenses {
				progress := metrics.PaymentProgress(e.PaidAmount, e.Amount)
				paid := fmt.Sprintf("%s (%.0f%%)", money(e.PaidAmount), progress.Display)
				if progress.Overpaid {
					paid += " overpaid"
				}
				row(tw, e.ID, e.Date, money(e.Amount), paid, e.Status.ToHuman(), e.Category, e.Description)
			}
			totals := metrics.SumExpenses(project.Expenses)
			row(tw, "", "total", money(totals.Amount), money(totals.Paid), "", "", "")
			return tw.Flush()
		},
	}
}

func printSummary(cmd *cobra.Command, s metrics.Summary) {
	out := cmd.OutOrStdout()
	switch {
	case s.TotalHours != nil:
		fmt.Fprintf(out, "Hours:     %s of %s used, %s left\n", hours(s.Consumed), hours(*s.TotalHours), hours(s.Remaining))
	case s.Budget != nil:
		fmt.Fprintf(out, "Budget:    %s, %s logged\n", money(*s.Budget), hours(s.Consumed))
	}
	fmt.Fprintf(out, "Progress:  %s %s\n", percent(s.Progress), bar(float64(s.Progress), 100, 20))
	fmt.Fprintf(out, "Tasks:     %d of %d done\n", s.CompletedTasks, s.TotalTasks)
	if s.Estimated > 0 {
		fmt.Fprintf(out, "Estimated: %s\n", hours(s.Estimated))
	}
	switch {
	case s.OverBudget:
		fmt.Fprintln(out, "Warning:   over budget")
	case s.OverEstimate:
		fmt.Fprintln(out, "Warning:   estimate exceeds the allocated hours")
	case s.NearingLimit:
		fmt.Fprintln(out, "Warning:   nearing the hour limit")
	}
}

func (a *app) chartCmd() *cobra.Command {
	var scaleName string
	var offset int
	cmd := &cobra.Command{
		Use:   "chart <id>",
		Short: "Chart logged hours per day, month or year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scale, err := metrics.ParseScale(scaleName)
			if err != nil {
				return err
			}
			project, _, err := a.loadProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			window := metrics.DefaultWindow(time.Now())
			if offset != 0 {
				window = window.Shift(scale, offset)
			}
			series := metrics.Aggregate(metrics.TimeEntryPoints(project.TimeEntries), scale, window)
			top := 0.0
			for _, h := range series.Hours {
				if h > top {
					top = h
				}
			}
			tw := newTable(cmd.OutOrStdout(), "PERIOD", "HOURS", "", "TOTAL", "AVG")
			for i, label := range series.Labels {
				row(tw, label, hours(series.Hours[i]), bar(series.Hours[i], top, 30),
					hours(series.Cumulative[i]), average(series.MovingAverage[i]))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&scaleName, "scale", string(metrics.DailyScale), "daily, monthly or yearly")
	cmd.Flags().IntVar(&offset, "offset", 0, "windows to move back (negative) or forward")
	return cmd
}
