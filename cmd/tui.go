package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/papapumpkin/astrostay/internal/catalog"
	"github.com/papapumpkin/astrostay/internal/telemetry"
	"github.com/papapumpkin/astrostay/internal/tui"
)

// tuiCmd launches the interactive booking terminal.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive booking terminal",
	Long: `Launch the AstroStay booking terminal: browse destinations, pick dates on
the calendar, choose travelers and cabin class, and confirm a booking with a
live price. With --watch the catalog override file is reloaded on change.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().Bool("no-stars", false, "disable the starfield animation")
	tuiCmd.Flags().Int("stars", 200, "number of stars on a 120x40 terminal")
	tuiCmd.Flags().Bool("watch", false, "reload the --catalog file when it changes")
	_ = viper.BindPFlag("no_stars", tuiCmd.Flags().Lookup("no-stars"))
	_ = viper.BindPFlag("star_count", tuiCmd.Flags().Lookup("stars"))
	_ = viper.BindPFlag("watch_catalog", tuiCmd.Flags().Lookup("watch"))
	rootCmd.AddCommand(tuiCmd)
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// terminalOutput picks where the TUI draws. Stdout is preferred; when it is
// redirected the TUI falls back to stderr so `astrostay tui > out` still works.
func terminalOutput(stdout, stderr *os.File, isTerm func(uintptr) bool) (*os.File, error) {
	switch {
	case isTerm(stdout.Fd()):
		return stdout, nil
	case isTerm(stderr.Fd()):
		return stderr, nil
	default:
		return nil, fmt.Errorf("astrostay tui requires a TTY (terminal)")
	}
}

func runTUI(_ *cobra.Command, _ []string) error {
	out, err := terminalOutput(os.Stdout, os.Stderr, isTerminal)
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	_ = s.events.Record(telemetry.KindSessionStart, "", nil)
	defer func() { _ = s.events.Record(telemetry.KindSessionEnd, "", nil) }()

	var reloads <-chan catalog.Reload
	if s.cfg.WatchCatalog {
		w, err := catalog.NewWatcher(s.cfg.CatalogPath)
		if err != nil {
			return fmt.Errorf("failed to watch catalog: %w", err)
		}
		defer w.Stop()
		if err := w.Start(); err != nil {
			return fmt.Errorf("failed to watch catalog: %w", err)
		}
		reloads = w.Reloads
		s.logger.Info("watching catalog", zap.String("path", w.Path))
	}

	var stars *tui.Starfield
	if !s.cfg.NoStars && s.cfg.StarCount > 0 {
		stars = tui.NewStarfield(tui.StarfieldConfig{Count: s.cfg.StarCount}, nil)
	}

	model := tui.NewAppModel(tui.Options{
		Desk:              s.desk(),
		Logger:            s.logger,
		Telemetry:         s.events,
		AdvanceDelay:      s.cfg.AdvanceDelay,
		ContactResetDelay: s.cfg.ContactResetDelay,
		Starfield:         stars,
	})
	s.logger.Info("tui started", zap.String("output", out.Name()))
	return tui.Run(model, reloads, tui.WithOutput(out))
}
