package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/pkg/browser"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/export"
	"github.com/san-kum/orrery/internal/gui"
	"github.com/san-kum/orrery/internal/logging"
	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/viz"
)

const defaultPreset = "planets"

var (
	configFile string
	preset     string
	seed       int64
	logLevel   string
	logFile    string
	// inspect / svg
	frames  int
	outFile string
	svgSize int
	braille bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "orrery",
		Short:        "items orbiting in 3D, hover to highlight, click to open",
		SilenceUsage: true,
		RunE:         runGUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "item preset (see 'orrery presets')")
	pf.Int64Var(&seed, "seed", 0, "random seed, 0 for time based")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the 3D window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "show the scene in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}

	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "print the generated groups",
		Args:  cobra.NoArgs,
		RunE:  runInspect,
	}
	inspectCmd.Flags().IntVar(&frames, "frames", 0, "frames to advance before printing")

	speedsCmd := &cobra.Command{
		Use:   "speeds",
		Short: "plot orbit speed against path radius",
		Args:  cobra.NoArgs,
		RunE:  runSpeeds,
	}

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "export the scene as svg",
		Args:  cobra.NoArgs,
		RunE:  runSVG,
	}
	svgCmd.Flags().StringVar(&outFile, "out", "orrery.svg", "output file, - for stdout")
	svgCmd.Flags().IntVar(&svgSize, "size", 800, "image size in pixels (top view)")
	svgCmd.Flags().IntVar(&frames, "frames", 0, "frames to advance before exporting")
	svgCmd.Flags().BoolVar(&braille, "braille", false, "export the terminal rendering instead of the top view")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available item presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PRESET\tITEMS\tNAMES")
			for _, name := range config.ListPresets() {
				items, _ := config.GetPreset(name)
				names := lo.Map(items, func(it config.ItemConfig, _ int) string { return it.Name })
				fmt.Fprintf(w, "%s\t%d\t%s\n", name, len(items), strings.Join(names, ", "))
			}
			w.Flush()
		},
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, inspectCmd, speedsCmd, svgCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig merges defaults, the config file, the preset and the flags,
// in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	name := preset
	if name == "" && configFile == "" {
		name = defaultPreset
	}
	if name != "" {
		items, err := config.GetPreset(name)
		if err != nil {
			return nil, err
		}
		cfg.Items = items
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	return cfg, cfg.Validate()
}

// newLogger writes to --log-file when given, else to fallback.
func newLogger(cfg *config.Config, fallback io.Writer) (*slog.Logger, func(), error) {
	if logFile == "" {
		if fallback == nil {
			return logging.Discard(), func() {}, nil
		}
		return logging.New(fallback, logging.ParseLevel(cfg.LogLevel)), func() {}, nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	return logging.New(f, logging.ParseLevel(cfg.LogLevel)), func() { f.Close() }, nil
}

func sessionOpts(cfg *config.Config) []orbit.Option {
	if cfg.Seed == 0 {
		return nil
	}
	return []orbit.Option{orbit.WithRand(rand.New(rand.NewSource(cfg.Seed)))}
}

// actions logs hovers and opens the item URL on click.
func actions(log *slog.Logger) config.Actions {
	return config.Actions{
		Hover: func(it *orbit.Item) {
			log.Debug("hover", "item", it.Label())
		},
		Click: func(it *orbit.Item) {
			if it.URL == "" {
				log.Info("clicked", "item", it.Label())
				return
			}
			log.Info("opening", "item", it.Label(), "url", it.URL)
			if err := browser.OpenURL(it.URL); err != nil {
				log.Error("open url failed", "url", it.URL, "err", err)
			}
		},
	}
}

// setup loads the config and builds the logger and the items.
func setup(cmd *cobra.Command, logOut io.Writer) (*config.Config, []*orbit.Item, *slog.Logger, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	log, closeLog, err := newLogger(cfg, logOut)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return cfg, cfg.BuildItems(actions(log)), log, closeLog, nil
}

// newSession builds a scene with the pure-Go picker, for commands that
// have no window.
func newSession(cfg *config.Config, items []*orbit.Item, log *slog.Logger) *orbit.Session {
	cam := cfg.NewCamera(float64(cfg.Window.Width) / float64(cfg.Window.Height))
	picker := &orbit.RayPicker{Camera: cam, PathThreshold: cfg.PathThreshold}
	s := orbit.New(cfg.Orbit(), picker, append(sessionOpts(cfg), orbit.WithLogger(log))...)
	s.BuildScene(items)
	return s
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, items, log, closeLog, err := setup(cmd, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	log.Info("starting window", "items", len(items), "width", cfg.Window.Width, "height", cfg.Window.Height)
	gui.Run(cfg, items, log, sessionOpts(cfg)...)
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	// the alternate screen owns the terminal
	cfg, items, log, closeLog, err := setup(cmd, nil)
	if err != nil {
		return err
	}
	defer closeLog()
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard

	return viz.Run(cfg, items, log, sessionOpts(cfg)...)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, items, log, closeLog, err := setup(cmd, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	s := newSession(cfg, items, log)
	for i := 0; i < frames; i++ {
		s.Tick(orbit.FrameInterval)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tID\tNAME\tRADIUS\tSIZE\tSPEED\tROTATION\tCOLOR\tURL")
	for i, g := range s.Groups() {
		it := s.Nodes().Item(g.Body.ID)
		id, name, url := "-", "-", "-"
		if it != nil {
			id, name = it.ID, it.Label()
			if it.URL != "" {
				url = it.URL
			}
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%.1f\t%.2f\t%.5f\t%.4f\t%s\t%s\n",
			i, id, name, g.Path.Radius, g.Body.Scale.X, s.Speed(g.Path.Radius), g.Rotation, g.Body.Color.Hex(), url)
	}
	w.Flush()

	fmt.Printf("\nmax radius %.1f, %d frames\n", s.MaxRadius(), frames)
	return nil
}

func runSpeeds(cmd *cobra.Command, args []string) error {
	cfg, items, log, closeLog, err := setup(cmd, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	s := newSession(cfg, items, log)
	groups := append([]*orbit.BodyGroup(nil), s.Groups()...)
	if len(groups) == 0 {
		fmt.Println("no groups")
		return nil
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Path.Radius < groups[j].Path.Radius })

	data := lo.Map(groups, func(g *orbit.BodyGroup, _ int) float64 { return s.Speed(g.Path.Radius) })
	if len(data) == 1 {
		data = append(data, data[0])
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Precision(4),
		asciigraph.Caption(fmt.Sprintf("rad/frame by path radius (%.0f to %.0f)", groups[0].Path.Radius, s.MaxRadius())),
	)
	fmt.Println(graph)
	return nil
}

func runSVG(cmd *cobra.Command, args []string) error {
	cfg, items, log, closeLog, err := setup(cmd, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	var svg string
	if braille {
		m := viz.NewModel(cfg, items, log, sessionOpts(cfg)...)
		for i := 0; i < frames; i++ {
			m.Step(orbit.FrameInterval)
		}
		m.Render()
		svg = export.CanvasToSVG(m.Canvas(), 4, orbit.PathColor.Hex())
	} else {
		s := newSession(cfg, items, log)
		for i := 0; i < frames; i++ {
			s.Tick(orbit.FrameInterval)
		}
		svg = export.SceneToSVG(s.Root(), svgSize)
	}

	if outFile == "-" {
		fmt.Println(svg)
		return nil
	}
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	log.Info("wrote svg", "path", outFile)
	return nil
}
