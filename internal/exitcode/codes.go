// Package exitcode defines named exit codes for the stretch CLI.
package exitcode

// Exit code constants.
const (
	Success     = 0   // Command finished; a played routine ran to completion
	Error       = 1   // Invalid args, unreadable files, failed saves
	NotFound    = 2   // Unknown routine, stretch, or log entry id
	Interrupted = 130 // SIGINT/SIGTERM or "quit" during a routine
)

// Name returns the human-readable name for the given exit code.
// Unknown codes return "unknown".
func Name(code int) string {
	switch code {
	case Success:
		return "Success"
	case Error:
		return "Error"
	case NotFound:
		return "NotFound"
	case Interrupted:
		return "Interrupted"
	default:
		return "unknown"
	}
}
