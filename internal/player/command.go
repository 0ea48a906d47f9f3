package player

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CommandKind is a keyboard action during a routine.
type CommandKind int

const (
	CmdToggle CommandKind = iota
	CmdPause
	CmdResume
	CmdNext
	CmdPrev
	CmdGoto
	CmdStop
	CmdStatus
)

// Command is one parsed keyboard line. Target is the zero-based stretch
// index of a CmdGoto.
type Command struct {
	Kind   CommandKind
	Target int
}

// ParseCommand parses one input line. An empty line toggles pause.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{Kind: CmdToggle}, nil
	}

	switch fields[0] {
	case "p", "pause":
		return Command{Kind: CmdPause}, nil
	case "r", "resume":
		return Command{Kind: CmdResume}, nil
	case "n", "next", "skip":
		return Command{Kind: CmdNext}, nil
	case "b", "prev", "back":
		return Command{Kind: CmdPrev}, nil
	case "s", "stop", "q", "quit":
		return Command{Kind: CmdStop}, nil
	case "?", "status":
		return Command{Kind: CmdStatus}, nil
	case "g", "goto":
		if len(fields) < 2 {
			return Command{}, fmt.Errorf("goto needs a stretch number")
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 {
			return Command{}, fmt.Errorf("invalid stretch number %q", fields[1])
		}
		return Command{Kind: CmdGoto, Target: n - 1}, nil
	}
	return Command{}, fmt.Errorf("unknown command %q", fields[0])
}

// ReadCommands parses lines from r until it is exhausted or ctx is done.
// Lines that do not parse are reported through onError and skipped.
// The returned channel is closed when reading stops.
//
// A blocked read on a terminal cannot be interrupted, so the goroutine may
// outlive ctx until the next line arrives; it never sends after ctx is done.
func ReadCommands(ctx context.Context, r io.Reader, onError func(error)) <-chan Command {
	out := make(chan Command)
	go func() {
		defer close(out)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			cmd, err := ParseCommand(scanner.Text())
			if err != nil {
				if onError != nil {
					onError(err)
				}
				continue
			}
			select {
			case out <- cmd:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
