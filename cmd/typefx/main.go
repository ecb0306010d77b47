package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/muesli/termenv"
	"github.com/san-kum/typefx/internal/audio"
	"github.com/san-kum/typefx/internal/clock"
	"github.com/san-kum/typefx/internal/config"
	"github.com/san-kum/typefx/internal/logging"
	"github.com/san-kum/typefx/internal/loop"
	"github.com/san-kum/typefx/internal/reveal"
	"github.com/san-kum/typefx/internal/store"
	"github.com/san-kum/typefx/internal/tui"
	"github.com/spf13/cobra"
)

const maxTraceFrames = 100000

var (
	dataDir    string
	configFile string
	preset     string
	theme      string
	frameRate  int
	mute       bool
	noColor    bool
	logLevel   string
	logFile    string
	// trace flags
	noSave   bool
	showJSON bool
)

// main registers the typefx commands. With no subcommand it opens the
// interactive page of configured texts.
func main() {
	rootCmd := &cobra.Command{
		Use:          "typefx",
		Short:        "typewriter text animations for the terminal",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor || os.Getenv("NO_COLOR") != "" {
				lipgloss.SetColorProfile(termenv.Ascii)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runPage(cfg, cfg.Texts)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".typefx", "trace data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "timing preset")
	pf.StringVar(&theme, "theme", "", "color theme")
	pf.IntVar(&frameRate, "fps", 0, "frame rate (default from config)")
	pf.BoolVar(&mute, "mute", false, "disable the typing sound")
	pf.BoolVar(&noColor, "no-color", false, "disable colors")
	pf.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&logFile, "log-file", "", "log file for the interactive page")

	playCmd := &cobra.Command{
		Use:   "play [text...]",
		Short: "animate the given lines",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runPage(cfg, args)
		},
	}

	traceCmd := &cobra.Command{
		Use:   "trace [text]",
		Short: "run one reveal on a virtual clock and record every tick",
		Args:  cobra.ExactArgs(1),
		RunE:  runTrace,
	}
	traceCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the trace")
	traceCmd.Flags().BoolVar(&showJSON, "json", false, "print the trace as json")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored traces",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot visible length over a stored trace",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored trace as json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return store.New(dataDir).ExportJSON(os.Stdout, args[0])
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list timing presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCHARS/S\tCAP")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.0f\t%.0fms\n", name, p.CharsPerSecond, p.MaxDurationMs)
			}
			return w.Flush()
		},
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list color themes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range tui.ThemeNames() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(playCmd, traceCmd, listCmd, plotCmd, exportCmd, presetsCmd, themesCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if preset != "" {
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Display.Theme = theme
	}
	if flags.Changed("fps") {
		cfg.Timing.FrameRate = frameRate
	}
	if mute {
		cfg.Audio.Enabled = false
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = logFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runPage(cfg *config.Config, texts []string) error {
	logger, closer, err := logging.Open(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closer.Close()

	player := audio.NewPlayer(audio.Config{
		Enabled: cfg.Audio.Enabled,
		File:    cfg.Audio.File,
		Volume:  cfg.Audio.Volume,
	}, audio.WithLogger(logger))
	if err := player.Init(); err != nil {
		logger.Warn("continuing without sound", "err", err)
	}
	defer player.Close()

	model := tui.NewModel(tui.Options{
		Texts:     texts,
		Timing:    cfg.RevealTiming(),
		FrameRate: cfg.Timing.FrameRate,
		Theme:     cfg.Display.Theme,
		Caret:     cfg.Display.Caret,
		BlinkMs:   cfg.Display.BlinkMs,
		Width:     cfg.Display.Width,
		Cue:       player,
		Logger:    logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running page: %w", err)
	}
	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := logging.New(os.Stderr, cfg.Log.Level)
	if err != nil {
		return err
	}

	text := args[0]
	clk := clock.NewManual(0)
	rec := &reveal.Recorder{}
	txt := reveal.New(text, clk,
		reveal.WithTiming(cfg.RevealTiming()),
		reveal.WithObserver(rec),
		reveal.WithLogger(logger),
	)

	l := loop.New(txt,
		loop.WithVirtualClock(clk),
		loop.WithFrameRate(cfg.Timing.FrameRate),
		loop.WithMaxFrames(maxTraceFrames),
		loop.WithLogger(logger),
	)
	start := txt.StartReveal()
	if start.IsNone() {
		fmt.Println("nothing to animate")
		return nil
	}
	l.Dispatch(start)

	stats, err := l.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("trace: %w", err)
	}

	meta := store.RunMetadata{
		Text:       text,
		Direction:  reveal.Reveal.String(),
		Duration:   start.Params.Duration,
		FrameRate:  cfg.Timing.FrameRate,
		Frames:     stats.Frames,
		Final:      txt.Visible(),
		Completed:  !txt.Animating(),
		CharsTotal: reveal.Length(text),
	}

	store.Stamp(&meta, rec.Samples)
	if showJSON {
		if err := store.WriteJSON(os.Stdout, meta, rec.Samples); err != nil {
			return err
		}
	} else {
		printTrace(meta, rec.Samples)
	}

	if noSave {
		return nil
	}
	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(meta, rec.Samples)
	if err != nil {
		return fmt.Errorf("saving trace: %w", err)
	}
	fmt.Fprintf(os.Stderr, "saved %s\n", runID)
	return nil
}

func printTrace(meta store.RunMetadata, samples []reveal.Sample) {
	fmt.Printf("text: %q\n", meta.Text)
	fmt.Printf("chars: %d  duration: %.2fms  fps: %d  frames: %d\n\n",
		meta.CharsTotal, meta.Duration, meta.FrameRate, meta.Frames)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TICK\tELAPSED\tTARGET\tCONT\tVISIBLE")
	for i, s := range samples {
		fmt.Fprintf(w, "%d\t%.2f\t%d\t%v\t%q\n", i+1, s.Elapsed, s.Target, s.Continue, s.Visible)
	}
	w.Flush()
	fmt.Println()

	if len(samples) > 1 {
		rec := reveal.Recorder{Samples: samples}
		fmt.Println(asciigraph.Plot(rec.Targets(),
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("target length per tick"),
		))
	}
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no traces found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tCHARS\tDURATION\tTICKS\tTEXT")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.2fms\t%d\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.CharsTotal,
			run.Duration,
			run.Ticks,
			ellipsize(run.Text, 32),
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	samples, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data to plot")
	}

	rec := reveal.Recorder{Samples: samples}
	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("text: %q\n", meta.Text)
	fmt.Printf("ticks: %d\n\n", len(samples))
	fmt.Println(asciigraph.Plot(rec.Targets(),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("target length (%d chars, %.2fms)", meta.CharsTotal, meta.Duration)),
	))
	return nil
}

func ellipsize(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if reveal.Length(s) <= n {
		return s
	}
	return reveal.Truncate(s, n-1) + "…"
}
