package cli

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vk/mendgrid/internal/app"
	"github.com/vk/mendgrid/internal/config"
	"github.com/zclconf/go-cty/cty"
)

// inlineStepName names the single step built from a direct subcommand.
const inlineStepName = "cli"

// globalFlags are shared by every subcommand.
type globalFlags struct {
	logFormat string
	logLevel  string
	dryRun    bool
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var parsed *app.Config
	root := newRootCmd(func(cfg *app.Config) { parsed = cfg })
	// cobra reads os.Args when given nil.
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(output)
	root.SetErr(output)

	if err := root.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return nil, false, exitErr
		}
		return nil, false, usageError(err.Error())
	}

	// Help, or a bare invocation, never reaches a RunE.
	if parsed == nil {
		slog.Debug("No command selected, exiting after usage.")
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "plan_paths", parsed.PlanPaths, "inline_steps", len(parsed.Steps))
	return parsed, false, nil
}

func newRootCmd(done func(*app.Config)) *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "mendgrid",
		Short: "mendgrid - repair corrupted text data files",
		Long: `mendgrid repairs corrupted text data files. It restores a file from a
known-good backup and removes orphaned lines such as color: 'blue'.

Single operations run straight from the command line; larger repairs are
described as HCL or YAML plans whose steps may depend on each other.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	pf.StringVar(&flags.logLevel, "log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	pf.BoolVar(&flags.dryRun, "dry-run", false, "Read and check every file but write nothing.")

	cmd.AddCommand(
		runCmd(flags, done),
		restoreCmd(flags, done),
		stripCmd(flags, done),
	)
	return cmd
}

func runCmd(flags *globalFlags, done func(*app.Config)) *cobra.Command {
	return &cobra.Command{
		Use:   "run PLAN_PATH...",
		Short: "Execute one or more repair plans",
		Long: `Execute repair plans. Each PLAN_PATH is a .hcl, .yaml or .yml file, or a
directory searched recursively for them.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := flags.config(app.Config{PlanPaths: args})
			if err != nil {
				return err
			}
			done(cfg)
			return nil
		},
	}
}

func restoreCmd(flags *globalFlags, done func(*app.Config)) *cobra.Command {
	return &cobra.Command{
		Use:   "restore SOURCE DESTINATION",
		Short: "Overwrite DESTINATION with the content of SOURCE",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			step := &config.Step{
				Type: "restore",
				Name: inlineStepName,
				Arguments: map[string]cty.Value{
					"source":      cty.StringVal(args[0]),
					"destination": cty.StringVal(args[1]),
				},
			}
			cfg, err := flags.config(app.Config{Steps: []*config.Step{step}})
			if err != nil {
				return err
			}
			done(cfg)
			return nil
		},
	}
}

func stripCmd(flags *globalFlags, done func(*app.Config)) *cobra.Command {
	var targets []string

	c := &cobra.Command{
		Use:   "strip SOURCE [DESTINATION]",
		Short: "Remove orphaned lines from SOURCE",
		Long: `Copy SOURCE without the lines matching a target into DESTINATION. The
destination defaults to SOURCE.fixed and must differ from SOURCE. Without
--target the lines color: 'blue' and color: "blue" are removed.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			arguments := map[string]cty.Value{
				"source": cty.StringVal(args[0]),
			}
			if len(args) == 2 {
				arguments["destination"] = cty.StringVal(args[1])
			}
			if len(targets) > 0 {
				vals := make([]cty.Value, 0, len(targets))
				for _, t := range targets {
					if strings.TrimSpace(t) == "" {
						return usageError("invalid --target: must not be blank")
					}
					vals = append(vals, cty.StringVal(t))
				}
				arguments["targets"] = cty.ListVal(vals)
			}

			step := &config.Step{Type: "strip_lines", Name: inlineStepName, Arguments: arguments}
			cfg, err := flags.config(app.Config{Steps: []*config.Step{step}})
			if err != nil {
				return err
			}
			done(cfg)
			return nil
		},
	}

	c.Flags().StringArrayVarP(&targets, "target", "t", nil, "Literal line to remove (repeatable). Replaces the default targets.")
	return c
}

// config validates the global flags and completes base into an app.Config.
func (f *globalFlags) config(base app.Config) (*app.Config, error) {
	logFormat := strings.ToLower(f.logFormat)
	if logFormat != "text" && logFormat != "json" {
		return nil, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(f.logLevel)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	slog.Debug("CLI parameter validation complete.")

	base.LogFormat = logFormat
	base.LogLevel = logLevel
	base.DryRun = f.dryRun

	cfg, err := app.NewConfig(base)
	if err != nil {
		return nil, usageError(err.Error())
	}
	return cfg, nil
}
