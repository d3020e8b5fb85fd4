package cmd

import (
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	errUtils "github.com/cloudposse/chronometer/errors"
	e "github.com/cloudposse/chronometer/internal/exec"
	tuiUtils "github.com/cloudposse/chronometer/internal/tui/utils"
	cfg "github.com/cloudposse/chronometer/pkg/config"
	log "github.com/cloudposse/chronometer/pkg/logger"
	"github.com/cloudposse/chronometer/pkg/report"
	"github.com/cloudposse/chronometer/pkg/schema"
	"github.com/cloudposse/chronometer/pkg/ui/theme"
)

// chronoConfig is loaded by PersistentPreRunE before every command.
var chronoConfig schema.Configuration

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "chronometer",
	Short: "A terminal stopwatch with laps",
	Long: `Chronometer is a stopwatch for the terminal. It counts hours, minutes, seconds and
hundredths, pauses and resumes without losing time, and records laps.

It opens a full-screen UI when run in a terminal, and a line console (start, pause,
reset, lap, time, laps, quit) when input or output is redirected or --plain is set.
A summary of the final time and laps is printed on exit.`,
	Example: `chronometer
chronometer --plain --output json
echo -e "start\nlap\nquit" | chronometer`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		interactive := !chronoConfig.UI.Plain && tuiUtils.IsTTY(os.Stdin) && tuiUtils.IsTTY(os.Stdout)

		snap, err := e.ExecuteSession(cmd.Context(), &chronoConfig, e.SessionOptions{
			In:          cmd.InOrStdin(),
			Out:         cmd.OutOrStdout(),
			Interactive: interactive,
		})
		if err != nil {
			return err
		}

		return report.Write(cmd.OutOrStdout(), report.NewSummary(snap), chronoConfig.Output.Format)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	err := RootCmd.Execute()
	if v, flagErr := RootCmd.PersistentFlags().GetBool("verbose"); flagErr == nil {
		errUtils.SetVerbose(v)
	}
	return err
}

// Cleanup closes the running stopwatch and the log file, if any.
func Cleanup() {
	e.CloseActiveSession()
	if err := log.Default().Close(); err != nil {
		os.Stderr.WriteString("failed to close log file: " + err.Error() + "\n")
	}
}

// initConfig loads configuration with the command's flags bound on top, then applies
// the color mode and logging settings.
func initConfig(cmd *cobra.Command) error {
	v := viper.New()
	if err := cfg.BindFlags(v, cmd.Flags()); err != nil {
		return err
	}

	loaded, err := cfg.LoadConfig(v)
	if err != nil {
		return err
	}
	chronoConfig = loaded

	profile := tuiUtils.ConfigureColors(chronoConfig.UI.Color, os.Stdout)

	logger, err := log.NewLoggerFromConfig(&chronoConfig)
	if err != nil {
		return err
	}
	if profile == termenv.Ascii {
		logger.SetStyles(theme.GetLogStylesNoColor())
	}
	previous := log.Default()
	log.SetDefault(logger)
	_ = previous.Close()

	log.Debug("Configuration loaded", "file", chronoConfig.ConfigFileUsed, "logs-level", logger.GetLevelString())
	return nil
}

func init() {
	RootCmd.PersistentFlags().String("logs-level", cfg.DefaultLogsLevel, "Logs level. Supported log levels are Trace, Debug, Info, Warning, Off. If the log level is set to Off, chronometer will not log any messages")
	RootCmd.PersistentFlags().String("logs-file", cfg.DefaultLogsFile, "The file to write logs to. Logs can be written to any file or any standard file descriptor, including '/dev/stdout', '/dev/stderr' and '/dev/null'")
	RootCmd.PersistentFlags().String("color", cfg.DefaultColor, "When to use colors: auto, always or never")
	RootCmd.PersistentFlags().Bool("banner", true, "Print the chronometer banner")
	RootCmd.PersistentFlags().Bool("verbose", false, "Show error context, explanations and the error chain")

	RootCmd.Flags().Duration("tick-interval", 0, "Display refresh period, e.g. 10ms (default 10ms)")
	RootCmd.Flags().Bool("plain", false, "Use the line console even in a terminal")
	RootCmd.Flags().String("title", cfg.DefaultTitle, "Title shown above the time")
	RootCmd.Flags().Int("lap-height", cfg.DefaultLapListHeight, "Number of laps visible before the list scrolls")
	RootCmd.Flags().StringP("output", "o", cfg.DefaultOutputFormat, "Session summary format: text, json, yaml or none")
}
