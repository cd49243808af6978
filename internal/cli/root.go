package cli

import (
	"github.com/spf13/cobra"

	"dropdown/internal/config"
)

// RootOptions holds the flags of the interactive command
type RootOptions struct {
	ConfigPath   string
	ChoicesPath  string
	Label        string
	Language     string
	Watch        bool
	ExitOnSelect bool
	LogFile      string
	LogLevel     string
}

// NewRootCommand creates the dropdown command
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "dropdown",
		Short: "Pick one value from a list in the terminal",
		Long: `Shows an accessible single-select dropdown and prints the chosen value.

Choices come from a JSON, YAML or TOML file (--choices) or from the
[[choices]] table of the config file. The selected value is written to
stdout on exit, so the command composes with shell pipelines.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDropdown(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "config file (default "+config.DefaultPath()+")")
	flags.StringVarP(&opts.ChoicesPath, "choices", "f", "", "choices file (.json, .yaml, .yml or .toml)")
	flags.StringVarP(&opts.Label, "label", "l", "", "accessible label shown above the dropdown")
	flags.StringVar(&opts.Language, "lang", "", "announcement language, e.g. en or fr (default from LANG)")
	flags.BoolVarP(&opts.Watch, "watch", "w", false, "reload when the choices or config file changes")
	flags.BoolVar(&opts.ExitOnSelect, "exit-on-select", false, "quit as soon as a choice is committed")
	flags.StringVar(&opts.LogFile, "log-file", "", "diagnostics log file (default dropdown.log)")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level: debug, info, warn or error")

	cmd.AddCommand(NewValidateCommand())
	cmd.AddCommand(NewConfigCommand())

	return cmd
}

// applyOverrides copies the flags the user actually set onto cfg
func applyOverrides(cmd *cobra.Command, opts *RootOptions, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("choices") {
		cfg.ChoicesFile = opts.ChoicesPath
	}
	if flags.Changed("label") {
		cfg.Label = opts.Label
	}
	if flags.Changed("lang") {
		cfg.Language = opts.Language
	}
	if flags.Changed("watch") {
		cfg.Watch = opts.Watch
	}
	if flags.Changed("exit-on-select") {
		cfg.ExitOnSelect = opts.ExitOnSelect
	}
	if flags.Changed("log-file") {
		cfg.Log.File = opts.LogFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.LogLevel
	}
}
