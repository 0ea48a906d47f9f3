package cue

import (
	"context"
	"os/exec"
	"strings"
	"sync"
	"time"
)

// DefaultTimeout bounds a single run of the sound command.
const DefaultTimeout = 10 * time.Second

// Command plays a cue by running an external program, e.g. "paplay bell.oga".
// Each cue runs in its own goroutine; errors are ignored.
type Command struct {
	Name    string
	Args    []string
	Timeout time.Duration

	wg sync.WaitGroup
}

// ParseCommand splits a command line on whitespace. It returns nil for a
// blank line.
func ParseCommand(line string) *Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	return &Command{Name: fields[0], Args: fields[1:], Timeout: DefaultTimeout}
}

// PlayCue starts the command and returns immediately.
func (c *Command) PlayCue() {
	if c == nil || c.Name == "" {
		return
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		// Fire and forget - ignore errors
		_ = exec.CommandContext(ctx, c.Name, c.Args...).Run()
	}()
}

// Wait blocks until every started cue has finished.
func (c *Command) Wait() {
	if c == nil {
		return
	}
	c.wg.Wait()
}
