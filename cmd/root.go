package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/itsmostafa/gocalc/internal/config"
	"github.com/itsmostafa/gocalc/internal/console"
	"github.com/itsmostafa/gocalc/internal/repl"
	"github.com/itsmostafa/gocalc/internal/transcript"
	"github.com/itsmostafa/gocalc/internal/version"
)

var configPath string
var noColor bool
var noMenu bool
var noReadline bool
var transcriptPath string
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gocalc",
	Short: "Interactive one-operation-at-a-time calculator",
	Long: `gocalc reads a starting number, then repeatedly asks for an operator,
applies it to the current value and prints the result.

Besides arithmetic and trigonometry it can show the value in binary, octal or
hexadecimal, convert between degrees and radians and keep one value in memory.
Type "quit" at the next-value prompt to leave.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runCalculator,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("gocalc %s\n", version.String()))

	rootCmd.Flags().StringVar(&configPath, "config", "", "Config file (default $GOCALC_CONFIG or ~/.gocalc.yaml)")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable styled output")
	rootCmd.Flags().BoolVar(&noMenu, "no-menu", false, "Do not print the operator menu every turn")
	rootCmd.Flags().BoolVar(&noReadline, "no-readline", false, "Read plain lines even on a terminal")
	rootCmd.Flags().StringVar(&transcriptPath, "transcript", "", "Append a JSON line per turn to this file")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log debug records to stderr")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCalculator(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Flags win over file and environment
	if noColor {
		cfg.Color = false
	}
	if noMenu {
		cfg.Menu = false
	}
	if noReadline {
		cfg.Readline = false
	}
	if transcriptPath != "" {
		cfg.Transcript = transcriptPath
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.Level()}))
	out := cmd.OutOrStdout()

	renderer := lipgloss.NewRenderer(out)
	if !cfg.Color {
		renderer.SetColorProfile(termenv.Ascii)
	}
	styles := repl.NewStyles(renderer)

	src, err := openInput(cmd.InOrStdin(), out, cfg.Readline)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer src.Close()

	con := console.New(src, out)
	con.PromptStyle = styles.Dim
	con.ErrorStyle = styles.Error

	runCfg := repl.Config{
		Console:  con,
		Logger:   logger,
		Styles:   styles,
		ShowMenu: cfg.Menu,
	}

	if cfg.Transcript != "" {
		rec, err := transcript.Open(cfg.Transcript)
		if err != nil {
			return err
		}
		defer rec.Close()
		runCfg.Recorder = rec
		logger.Debug("transcript enabled", "path", cfg.Transcript, "session_id", rec.SessionID())
	}

	return repl.Run(runCfg)
}

// openInput uses the terminal-aware source for real files and a plain
// scanner for anything else, such as input set by tests.
func openInput(in io.Reader, out io.Writer, interactive bool) (console.LineSource, error) {
	if f, ok := in.(*os.File); ok {
		return console.Open(f, out, interactive)
	}
	return console.NewScannerSource(in), nil
}
