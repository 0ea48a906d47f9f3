package cli

import (
	"github.com/spf13/cobra"
)

// helpTemplate is shared by every command. The keyboard, config and exit code
// sections only appear on the root and run commands.
const helpTemplate = `{{with (or .Long .Short)}}{{. | trimTrailingWhitespaces}}

{{end}}USAGE
  {{.UseLine}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} <command> [flags]{{end}}{{if gt (len .Aliases) 0}}

ALIASES
  {{.NameAndAliases}}{{end}}{{if .HasAvailableSubCommands}}

COMMANDS{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

FLAGS
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

GLOBAL FLAGS
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if or (not .HasParent) (eq .Name "run")}}

KEYS DURING A ROUTINE
  p, pause          Pause the countdown
  r, resume         Resume a paused countdown
  <enter>           Toggle pause
  n, next           Skip to the next stretch
  b, prev           Go back to the previous stretch
  g N, goto N       Jump to stretch N (1-based)
  ?, status         Print the status on a fresh line
  s, stop           Stop the routine without logging it
  q, quit           Same as stop{{end}}{{if not .HasParent}}

CONFIG FILE
  KEY=VALUE lines read from <user config dir>/stretch/config, then --config.
  Keys: DATA_DIR, CATALOG_FILE, BREAK_SECONDS, DEFAULT_ITEM_SECONDS,
        CUE_ENABLED, CUE_COMMAND, TICK_MILLIS, VERBOSE

EXIT CODES
  0   Success              Command finished, routine completed
  1   Error                Invalid arguments, unreadable files, failed saves
  2   NotFound             Unknown routine, stretch, or log entry
  130 Interrupted          SIGINT, SIGTERM, or stop during a routine

EXAMPLES
  # Browse the library
  stretch stretches --tag "Hips & Glutes"

  # Build a routine from stretch ids, overriding one hold
  stretch routines add "Desk break" neck-rotation cat-cow:45 childs-pose

  # Play it in ten minutes with a sound cue
  stretch run <routine-id> --at +10m --cue-command "paplay bell.oga"

  # Log a yoga class and look at this month
  stretch log add --name "Yoga class" --minutes 60
  stretch log calendar{{end}}{{if .HasHelpSubCommands}}

ADDITIONAL HELP TOPICS{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
  {{rpad .CommandPath .CommandPathPadding}} {{.Short}}{{end}}{{end}}{{end}}
`

// SetCustomHelp configures the cobra command to use our custom help template.
// Subcommands inherit it.
func SetCustomHelp(cmd *cobra.Command) {
	cmd.SetHelpTemplate(helpTemplate)
}
