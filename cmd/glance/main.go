// Package main provides the CLI entrypoint for glance.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/glance/internal/config"
	"github.com/verte-zerg/glance/internal/document"
	"github.com/verte-zerg/glance/internal/model"
	"github.com/verte-zerg/glance/internal/player"
	"github.com/verte-zerg/glance/internal/stats"
	"github.com/verte-zerg/glance/internal/store"
	"github.com/verte-zerg/glance/internal/tui"
)

const (
	defaultWPM       = 300
	defaultAccent    = "#C89A3A"
	defaultPeekLines = 8
)

var (
	readWPM       int
	readAccent    string
	readPeekLines int

	statsSource string
	statsSince  string
	statsLast   int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "glance [file]",
		Short:         "TUI speed reader",
		Long:          "glance shows a text one word at a time, pinning each word's optimal recognition point to a fixed spot so the eye never moves.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runReadCmd,
	}

	rootCmd.Flags().IntVar(&readWPM, "wpm", defaultWPM, "reading rate in words per minute (100-1000, step 50)")
	rootCmd.Flags().StringVar(&readAccent, "accent", defaultAccent, "accent color for the recognition point")
	rootCmd.Flags().IntVar(&readPeekLines, "peek-lines", defaultPeekLines, "height of the full-text peek panel")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

func runReadCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "wpm", &readWPM, fileCfg.Reader.WPM)
	applyStringConfig(cmd, "accent", &readAccent, fileCfg.Reader.Accent)
	applyIntConfig(cmd, "peek-lines", &readPeekLines, fileCfg.Reader.PeekLines)

	cfg := model.Config{
		WPM:       player.ClampWPM(readWPM),
		Accent:    readAccent,
		PeekLines: readPeekLines,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	doc, err := loadInitialDocument(args)
	if err != nil {
		return err
	}

	storePath := config.DefaultDBPath()
	st, err := store.Open(storePath)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	m := tui.NewModel(cfg, st, doc)
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		// Piped stdin is the document; read keys from the controlling tty.
		tty, err := os.Open("/dev/tty")
		if err != nil {
			return fmt.Errorf("failed to open tty: %w", err)
		}
		defer func() {
			if cerr := tty.Close(); cerr != nil {
				logErrf("failed to close tty: %v\n", cerr)
			}
		}()
		opts = append(opts, tea.WithInput(tty))
	}
	program := tea.NewProgram(m, opts...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// loadInitialDocument resolves the document from the file argument, a piped
// stdin, or an empty placeholder when neither is given.
func loadInitialDocument(args []string) (document.Document, error) {
	if len(args) == 1 {
		return document.Load(args[0])
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return document.FromReader("stdin", os.Stdin)
	}
	return document.FromText("", ""), nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show reading history",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsSource, "source", "", "source name filter")
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N readings")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if statsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", statsSince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}

	cfg := model.StatsConfig{
		Source: statsSource,
		Since:  sinceTime,
		Last:   statsLast,
	}

	storePath := config.DefaultDBPath()
	st, err := store.Open(storePath)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	readings, err := st.ListReadings(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to list readings: %w", err)
	}
	out := cmd.OutOrStdout()
	if err := stats.RenderSummary(out, readings); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.RenderPaceTrend(out, readings); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.RenderHistory(out, readings); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# glance configuration
# Uncomment a value to enable it. CLI flags override config values.

[reader]
# wpm = %d              # Reading rate in words per minute (100-1000, step 50)
# accent = %q     # Accent color for the recognition point
# peek-lines = %d        # Height of the full-text peek panel
`,
		defaultWPM,
		defaultAccent,
		defaultPeekLines,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Accent == "" {
		return fmt.Errorf("--accent must not be empty")
	}
	if cfg.PeekLines <= 0 {
		return fmt.Errorf("--peek-lines must be > 0")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
