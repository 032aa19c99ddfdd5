package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"hours-dashboard/config"
	"hours-dashboard/initializers"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type app struct {
	configPath string
	mock       bool
	client     *initializers.Client
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dashboard",
		Short:         "Project hours, expenses and tracker comments",
		Long:          `A terminal dashboard for time-based and fixed-price projects: logged hours, expenses and payments, hour requests and unread tracker comments.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "config.yml", "config file")
	root.PersistentFlags().BoolVar(&a.mock, "mock", false, "use the bundled demo data instead of the API")

	root.AddCommand(
		a.loginCmd(),
		a.logoutCmd(),
		a.whoamiCmd(),
		a.themeCmd(),
		a.projectsCmd(),
		a.projectCmd(),
		a.chartCmd(),
		a.timeCmd(),
		a.commentCmd(),
		a.expenseCmd(),
		a.paymentCmd(),
		a.hoursCmd(),
		a.usersCmd(),
		a.unreadCmd(),
		a.reportCmd(),
	)
	return root
}

func (a *app) open(ctx context.Context) error {
	conf, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.mock {
		conf.Api.UseMockData = true
	}
	initializers.InitLogger(conf.Log.Level)
	a.client, err = initializers.InitClient(ctx, conf)
	return err
}

func (a *app) close() {
	if a.client != nil {
		a.client.Close()
		a.client = nil
	}
}

// requireAuth stops commands that need a session before any request is sent.
func (a *app) requireAuth() error {
	if !a.client.Auth.IsAuthenticated() {
		return errors.New("not logged in, run `dashboard login` first")
	}
	return nil
}

// execute runs one command line. The client is closed even when the command fails.
func execute(ctx context.Context, args []string, out io.Writer) error {
	a := &app{}
	defer a.close()
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(out)
	return root.ExecuteContext(ctx)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := execute(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		cancel()
		os.Exit(1)
	}
}
