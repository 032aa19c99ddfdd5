package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type cli struct {
	t   *testing.T
	dir string
}

func newCLI(t *testing.T) *cli {
	dir := t.TempDir()
	t.Setenv("USE_MOCK_DATA", "true")
	t.Setenv("MOCK_LATENCY_MS", "0")
	t.Setenv("STATE_PATH", filepath.Join(dir, "state.db"))
	t.Setenv("LOG_LEVEL", "error")
	return &cli{t: t, dir: dir}
}

func (c *cli) run(args ...string) (string, error) {
	var out bytes.Buffer
	args = append([]string{"--config", filepath.Join(c.dir, "missing.yml")}, args...)
	err := execute(context.Background(), args, &out)
	return out.String(), err
}

func (c *cli) must(args ...string) string {
	out, err := c.run(args...)
	require.NoError(c.t, err, out)
	return out
}

func TestSession(t *testing.T) {
	c := newCLI(t)

	_, err := c.run("projects")
	require.ErrorContains(t, err, "not logged in")

	_, err = c.run("login", "--email", "demo@example.com", "--password", "wrong")
	require.ErrorContains(t, err, "Invalid credentials")

	out := c.must("login", "--email", "demo@example.com", "--password", "demo")
	require.Contains(t, out, "Logged in as John Doe (Administrator)")

	// the token survives into the next invocation
	out = c.must("whoami")
	require.Contains(t, out, "demo@example.com")
	require.Contains(t, out, "users")

	c.must("logout")
	_, err = c.run("whoami")
	require.ErrorContains(t, err, "not logged in")
}

func TestTheme(t *testing.T) {
	c := newCLI(t)
	require.Contains(t, c.must("theme"), "Theme: dark")
	require.Contains(t, c.must("theme"), "Theme: light")
	require.Contains(t, c.must("theme", "dark"), "Theme: dark")
	_, err := c.run("theme", "blue")
	require.Error(t, err)
}

func TestProjectCommands(t *testing.T) {
	c := newCLI(t)
	c.must("login", "--email", "sarah@example.com", "--password", "demo")

	out := c.must("projects")
	require.Contains(t, out, "E-commerce Platform")
	require.Contains(t, out, "Website Maintenance")
	require.NotContains(t, out, "Mobile App Development")

	out = c.must("project", "1")
	require.Contains(t, out, "Time entries")
	require.Contains(t, out, "Progress:")

	_, err := c.run("project", "2")
	require.Error(t, err)

	t.Run(`chart`, func(t *testing.T) {
		out := c.must("chart", "1", "--scale", "monthly")
		require.Contains(t, out, "PERIOD")
		_, err := c.run("chart", "1", "--scale", "weekly")
		require.Error(t, err)
	})

	t.Run(`validation`, func(t *testing.T) {
		_, err := c.run("time", "add", "1", "--hours", "2")
		require.ErrorContains(t, err, "description is required")
		_, err = c.run("time", "status", "1", "x", "finished")
		require.ErrorContains(t, err, "unknown time entry status")
		_, err = c.run("payment", "1", "e", "--amount", "0")
		require.ErrorContains(t, err, "payment amount must be positive")
	})

	t.Run(`clients cannot manage users or export`, func(t *testing.T) {
		_, err := c.run("users")
		require.ErrorContains(t, err, "cannot manage users")
		_, err = c.run("report", "1")
		require.ErrorContains(t, err, "cannot export reports")
	})
}

func TestAdminCommands(t *testing.T) {
	c := newCLI(t)
	c.must("login", "--email", "demo@example.com", "--password", "demo")

	out := c.must("time", "add", "1", "-d", "Checkout fixes", "--hours", "2.5")
	require.Contains(t, out, "Logged 2.5h")

	out = c.must("hours", "list", "1")
	require.Contains(t, out, "pending")

	out = c.must("users")
	require.Contains(t, out, "sarah@example.com")
	out = c.must("users", "create", "--name", "Nina Ops", "--email", "nina@example.com", "--role", "manager")
	require.Contains(t, out, "Created Nina Ops (Manager)")

	report := filepath.Join(c.dir, "report.pdf")
	c.must("report", "1", "--format", "pdf", "--out", report)
	info, err := os.Stat(report)
	require.NoError(t, err)
	require.Positive(t, info.Size())

	_, err = c.run("report", "1", "--format", "csv")
	require.ErrorContains(t, err, "format must be xlsx or pdf")
}

func TestUnread(t *testing.T) {
	c := newCLI(t)
	c.must("login", "--email", "demo@example.com", "--password", "demo")
	out := c.must("unread")
	require.Contains(t, out, "unread")
	require.Contains(t, out, "DBY-362")

	out = c.must("unread", "read", "DBY-362", "--all", "--type", "jira")
	require.Contains(t, out, "unread")
}
