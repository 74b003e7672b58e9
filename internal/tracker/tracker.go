// Package tracker queries an external issue-tracker CLI for work items.
//
// The tracker is an opaque, possibly-absent dependency: every query is
// best-effort, bounded by its own timeout, and never retried. Callers decide
// what a failed query means (for the session briefing: the section is
// silently omitted).
package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"time"
)

// Issue is a single work item as reported by the tracker. Missing fields
// decode to empty strings; rendering substitutes placeholders.
type Issue struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Source lists work items from an issue tracker. Each operation is
// independently fallible.
type Source interface {
	ListInProgress(ctx context.Context) ([]Issue, error)
	ListReady(ctx context.Context, limit int) ([]Issue, error)
}

// runFunc executes the tracker binary and returns its stdout.
type runFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// Client implements Source by shelling out to the tracker CLI.
type Client struct {
	run     runFunc
	command string
	timeout time.Duration
}

// NewClient creates a tracker client for the given CLI command. Each query
// runs under its own timeout.
func NewClient(command string, timeout time.Duration) *Client {
	return &Client{
		command: command,
		timeout: timeout,
		run:     runCommand,
	}
}

// Command returns the tracker CLI command name.
func (c *Client) Command() string {
	return c.command
}

// Available reports whether the tracker binary resolves on PATH.
func (c *Client) Available() bool {
	_, err := exec.LookPath(c.command)
	return err == nil
}

// ListInProgress lists issues currently being worked on.
func (c *Client) ListInProgress(ctx context.Context) ([]Issue, error) {
	return c.query(ctx, "list", "--status", "in_progress", "--json")
}

// ListReady lists issues with no blocking dependencies, capped at limit.
func (c *Client) ListReady(ctx context.Context, limit int) ([]Issue, error) {
	return c.query(ctx, "ready", "--limit", strconv.Itoa(limit), "--json")
}

func (c *Client) query(ctx context.Context, args ...string) ([]Issue, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	output, err := c.run(ctx, c.command, args...)
	if err != nil {
		return nil, fmt.Errorf("tracker query %s failed: %w", args[0], err)
	}

	output = bytes.TrimSpace(output)
	if len(output) == 0 {
		return nil, nil
	}

	var issues []Issue
	if err := json.Unmarshal(output, &issues); err != nil {
		return nil, fmt.Errorf("tracker returned unparseable output: %w", err)
	}
	return issues, nil
}

// runCommand dispatches to the real binary. Only stdout is captured; the
// tracker's stderr is discarded rather than leaked into the host transcript.
func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 -- command name comes from trusted config
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return nil, err //nolint:wrapcheck // caller wraps with query context
	}
	return stdout.Bytes(), nil
}
