package main

import (
	"fmt"
	"io"

	authstore "hours-dashboard/lib/store/auth"
	trackerapimodels "hours-dashboard/models/api/tracker"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func (a *app) unreadCmd() *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "unread",
		Short: "Show unread comments on time entries and tracker tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			if err := a.client.Auth.RefreshUnread(ctx); err != nil {
				return err
			}
			printUnread(out, a.client.Auth.State().UnreadGroups)
			if !watch {
				return nil
			}

			last := a.client.Auth.State().UnreadMessages
			changes := make(chan int, 1)
			unsubscribe := a.client.Auth.Subscribe(func(st authstore.State) {
				if st.IsLoading || st.UnreadMessages == last {
					return
				}
				last = st.UnreadMessages
				select {
				case changes <- st.UnreadMessages:
				default:
				}
			})
			defer unsubscribe()
			fmt.Fprintf(out, "Watching, %d unread\n", last)
			a.client.StartUnreadWorker(ctx)
			for {
				select {
				case <-ctx.Done():
					return nil
				case n := <-changes:
					fmt.Fprintf(out, "%d unread\n", n)
				}
			}
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep polling and report changes")
	cmd.AddCommand(a.readCmd())
	return cmd
}

func printUnread(out io.Writer, groups []trackerapimodels.UnreadCommentsGroup) {
	fmt.Fprintf(out, "%d unread\n", trackerapimodels.CountUnread(groups))
	for _, g := range groups {
		title := g.TaskKey + " " + g.TaskSummary
		if g.Type == trackerapimodels.TimeEntryGroup {
			title = "entry " + g.TimeEntryID + " " + g.TimeEntryDescription
		}
		fmt.Fprintf(out, "\n%s\n", title)
		for _, c := range g.Comments {
			if c.IsRead {
				continue
			}
			fmt.Fprintf(out, "  [%s] %s, %s: %s\n", c.ID, c.UserName, humanize.Time(c.Timestamp), c.Content)
		}
	}
}

func (a *app) readCmd() *cobra.Command {
	var all bool
	var group string
	cmd := &cobra.Command{
		Use:   "read <comment-id|group-id>",
		Short: "Mark a comment, or with --all a whole group, as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			groupType := trackerapimodels.GroupType(group)
			if err := groupType.Validate(); err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			ctx := cmd.Context()
			var err error
			if all {
				err = a.client.Auth.MarkAllRead(ctx, args[0], groupType)
			} else {
				err = a.client.Auth.MarkCommentRead(ctx, args[0], groupType)
			}
			if err != nil {
				return errors.Wrap(err, "unable to mark as read")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d unread\n", a.client.Auth.State().UnreadMessages)
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "mark every comment in the group")
	cmd.Flags().StringVar(&group, "type", string(trackerapimodels.TaskGroup), "jira or timeEntry")
	return cmd
}
