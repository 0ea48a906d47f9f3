// Package cli provides flag binding, validation and help text for the
// stretch CLI.
package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/stretch/internal/config"
)

// RunOptions holds the flags that only apply to "stretch run".
type RunOptions struct {
	StartAt string
	NoCue   bool
}

// BindFlags registers the global flags as persistent flags on the root
// command. The flags directly modify fields in the provided config pointer.
// Call ValidateFlags after parsing and BuildOverrides to feed the
// precedence loader.
func BindFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.PersistentFlags()

	// Storage
	flags.StringVar(&cfg.DataDir, "data-dir", "", "Directory holding routines and the activity log")
	flags.StringVar(&cfg.CatalogFile, "catalog", "", "YAML stretch library replacing the built-in one")
	flags.StringVar(&cfg.ConfigFile, "config", "", "Path to additional config file")

	// Timer
	flags.IntVar(&cfg.BreakSeconds, "break-seconds", config.DefaultBreakSeconds, "Rest between stretches in seconds")
	flags.IntVar(&cfg.DefaultItemSeconds, "default-item-seconds", config.DefaultItemSeconds, "Hold length for new items whose stretch has no default")

	// Cues
	flags.StringVar(&cfg.CueCommand, "cue-command", "", "Command run for each countdown cue, e.g. \"paplay bell.oga\"")

	// Output
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Print debug output")
}

// BindRunFlags registers the flags of the run command.
func BindRunFlags(cmd *cobra.Command, cfg *config.Config, opts *RunOptions) {
	flags := cmd.Flags()
	flags.StringVar(&opts.StartAt, "at", "", "Delay the start: +DURATION, HH:MM, or \"YYYY-MM-DD HH:MM\"")
	flags.BoolVar(&opts.NoCue, "no-cue", false, "Disable countdown cues for this run")
	flags.IntVar(&cfg.TickMillis, "tick-millis", config.DefaultTickMillis, "Length of one timer second in milliseconds")
	_ = flags.MarkHidden("tick-millis")
}

// ValidateFlags checks flag values after parsing.
func ValidateFlags(cmd *cobra.Command, cfg *config.Config) error {
	// --config must exist if provided
	if cfg.ConfigFile != "" {
		if _, err := os.Stat(cfg.ConfigFile); err != nil {
			return fmt.Errorf("--config: %w", err)
		}
	}

	if cmd.Flags().Changed("break-seconds") && cfg.BreakSeconds < 1 {
		return fmt.Errorf("--break-seconds must be at least 1, got: %d", cfg.BreakSeconds)
	}
	if cmd.Flags().Changed("default-item-seconds") && cfg.DefaultItemSeconds < 1 {
		return fmt.Errorf("--default-item-seconds must be at least 1, got: %d", cfg.DefaultItemSeconds)
	}
	if cmd.Flags().Changed("tick-millis") && cfg.TickMillis < 1 {
		return fmt.Errorf("--tick-millis must be at least 1, got: %d", cfg.TickMillis)
	}

	return nil
}

// BuildOverrides creates a map of CLI flag overrides from the config.
// Uses cmd.Flags().Changed() to only include flags explicitly set by the user,
// ensuring config file values are not accidentally overridden by default values.
func BuildOverrides(cmd *cobra.Command, cfg *config.Config) map[string]string {
	overrides := make(map[string]string)
	flags := cmd.Flags()

	stringFlags := map[string]struct {
		key string
		val string
	}{
		"data-dir":    {"DATA_DIR", cfg.DataDir},
		"catalog":     {"CATALOG_FILE", cfg.CatalogFile},
		"cue-command": {"CUE_COMMAND", cfg.CueCommand},
	}
	for flag, mapping := range stringFlags {
		if flags.Changed(flag) {
			overrides[mapping.key] = mapping.val
		}
	}

	intFlags := map[string]struct {
		key string
		val int
	}{
		"break-seconds":        {"BREAK_SECONDS", cfg.BreakSeconds},
		"default-item-seconds": {"DEFAULT_ITEM_SECONDS", cfg.DefaultItemSeconds},
		"tick-millis":          {"TICK_MILLIS", cfg.TickMillis},
	}
	for flag, mapping := range intFlags {
		if flags.Changed(flag) {
			overrides[mapping.key] = strconv.Itoa(mapping.val)
		}
	}

	if flags.Changed("verbose") {
		overrides["VERBOSE"] = strconv.FormatBool(cfg.Verbose)
	}

	// Negation flag
	if flags.Changed("no-cue") {
		if v, err := flags.GetBool("no-cue"); err == nil && v {
			overrides["CUE_ENABLED"] = "false"
		}
	}

	return overrides
}
