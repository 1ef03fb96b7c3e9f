package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/dimas-aryo/ornawheel/internal/catalog"
	"github.com/dimas-aryo/ornawheel/internal/config"
	"github.com/dimas-aryo/ornawheel/internal/export"
	"github.com/dimas-aryo/ornawheel/internal/gui"
	"github.com/dimas-aryo/ornawheel/internal/rig"
	"github.com/dimas-aryo/ornawheel/internal/scroll"
	"github.com/dimas-aryo/ornawheel/internal/tui"
	"github.com/dimas-aryo/ornawheel/internal/tune"
	"github.com/dimas-aryo/ornawheel/internal/viz"
	"github.com/dimas-aryo/ornawheel/internal/wheel"
)

var (
	configFile  string
	catalogFile string
	assetDir    string
	preset      string
	radius      float64
	sensitivity float64
	friction    float64
	autoSpeed   float64
	axisName    string
	// layout command
	layoutAngle float64
	layoutFmt   string
	svgFile     string
	// curves command
	releaseVel float64
	// tune command
	tuneTarget    float64
	tuneFrictions []float64
	tuneSens      []float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ornawheel",
		Short: "interactive 3D ornament showcase",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, records, err := loadScene(cmd)
			if err != nil {
				return err
			}
			return gui.Run(cfg, records, assetDir)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "catalog file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "run the showcase window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, records, err := loadScene(cmd)
			if err != nil {
				return err
			}
			return gui.Run(cfg, records, assetDir)
		},
	}
	showCmd.Flags().StringVar(&assetDir, "assets", "assets/ornaments", "image asset directory")
	showCmd.Flags().Float64Var(&radius, "radius", config.DefaultRadius, "wheel radius")
	showCmd.Flags().Float64Var(&sensitivity, "sensitivity", config.DefaultSensitivity, "drag sensitivity (rad/px)")
	showCmd.Flags().Float64Var(&friction, "friction", config.DefaultFriction, "inertia friction")
	showCmd.Flags().Float64Var(&autoSpeed, "auto-speed", config.DefaultAutoSpeed, "auto-rotation speed (rad/s)")
	showCmd.Flags().StringVar(&axisName, "axis", "vertical", "rotation axis (vertical|horizontal)")

	layoutCmd := &cobra.Command{
		Use:   "layout",
		Short: "dump card transforms at a given angle",
		RunE:  dumpLayout,
	}
	layoutCmd.Flags().Float64Var(&layoutAngle, "angle", 0, "wheel angle in radians")
	layoutCmd.Flags().StringVar(&layoutFmt, "format", "table", "output format (table|csv|json)")
	layoutCmd.Flags().StringVar(&svgFile, "svg", "", "also write an SVG snapshot to this path")

	curvesCmd := &cobra.Command{
		Use:   "curves",
		Short: "plot motion and choreography curves",
		RunE:  plotCurves,
	}
	curvesCmd.Flags().Float64Var(&releaseVel, "velocity", 3.0, "release velocity for the inertia plot (rad/s)")

	anchorCmd := &cobra.Command{
		Use:   "anchor",
		Short: "show pivot screen anchoring across aspect ratios",
		RunE:  showAnchor,
	}

	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "list catalog records",
		RunE:  listCatalog,
	}
	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "browse the catalog in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, records, err := loadScene(cmd)
			if err != nil {
				return err
			}
			return tui.Run(records, cfg)
		},
	}
	catalogCmd.AddCommand(browseCmd)

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "print a wireframe of the wheel",
		RunE:  printPreview,
	}
	previewCmd.Flags().Float64Var(&layoutAngle, "angle", 0, "wheel angle in radians")

	tuneCmd := &cobra.Command{
		Use:   "tune",
		Short: "sweep friction/sensitivity grids for flick feel",
		RunE:  runTune,
	}
	tuneCmd.Flags().Float64Var(&tuneTarget, "target", 1.5, "desired settle time after a flick (s)")
	tuneCmd.Flags().Float64SliceVar(&tuneFrictions, "frictions", []float64{2.0, 3.5, 5.0, 7.0}, "friction values to sweep")
	tuneCmd.Flags().Float64SliceVar(&tuneSens, "sensitivities", []float64{0.004, 0.006, 0.008}, "sensitivity values to sweep")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list configuration presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(showCmd, layoutCmd, curvesCmd, anchorCmd, catalogCmd, previewCmd, tuneCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadScene resolves config (preset, then file, then flags) and catalog.
func loadScene(cmd *cobra.Command) (*config.Config, []catalog.Record, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("radius") {
		cfg.Wheel.Radius = radius
	}
	if flags.Changed("sensitivity") {
		cfg.Wheel.Sensitivity = sensitivity
	}
	if flags.Changed("friction") {
		cfg.Wheel.Friction = friction
	}
	if flags.Changed("auto-speed") {
		cfg.Wheel.AutoRotateSpeed = autoSpeed
	}
	if flags.Changed("axis") {
		cfg.Wheel.Axis = axisName
	}

	records := catalog.Default()
	path := catalogFile
	if path == "" {
		path = cfg.Catalog
	}
	if path != "" {
		loaded, err := catalog.Load(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		records = loaded
	}
	return cfg, records, nil
}

func sceneLayout(cmd *cobra.Command) (*config.Config, wheel.Frame, wheel.LayoutConfig, error) {
	cfg, records, err := loadScene(cmd)
	if err != nil {
		return nil, wheel.Frame{}, wheel.LayoutConfig{}, err
	}
	layoutCfg := cfg.LayoutConfig()
	layoutCfg.Count = len(records)
	frame, err := wheel.Layout(layoutAngle, layoutCfg)
	if err != nil {
		return nil, wheel.Frame{}, wheel.LayoutConfig{}, err
	}
	return cfg, frame, layoutCfg, nil
}

func dumpLayout(cmd *cobra.Command, args []string) error {
	cfg, frame, layoutCfg, err := sceneLayout(cmd)
	if err != nil {
		return err
	}

	switch layoutFmt {
	case "table":
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "index\tx\ty\tz\tfacing")
		for _, c := range frame.Cards {
			fmt.Fprintf(w, "%d\t%.4f\t%.4f\t%.4f\t%.4f\n",
				c.Index, c.Position.X, c.Position.Y, c.Position.Z, c.Facing)
		}
		w.Flush()
	case "csv":
		w := csv.NewWriter(os.Stdout)
		w.Write([]string{"index", "x", "y", "z", "facing"})
		for _, c := range frame.Cards {
			w.Write([]string{
				strconv.Itoa(c.Index),
				strconv.FormatFloat(c.Position.X, 'f', 6, 64),
				strconv.FormatFloat(c.Position.Y, 'f', 6, 64),
				strconv.FormatFloat(c.Position.Z, 'f', 6, 64),
				strconv.FormatFloat(c.Facing, 'f', 6, 64),
			})
		}
		w.Flush()
		return w.Error()
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(frame); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", layoutFmt)
	}

	if svgFile != "" {
		svg, err := export.WheelSVG(frame, cfg.RigConfig(), layoutCfg.Axis, 960, 540)
		if err != nil {
			return err
		}
		if err := os.WriteFile(svgFile, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgFile)
	}
	return nil
}

func plotCurves(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadScene(cmd)
	if err != nil {
		return err
	}

	// Inertia decay: release at the given velocity, no further input.
	vel := make([]float64, 0, 180)
	decay := wheel.NewController(cfg.MotionParams())
	decay.SetAutoPlay(false)
	decay.BeginDrag()
	// Steady drag at the requested speed so the smoothed estimate settles.
	for i := 0; i < 30; i++ {
		decay.Drag(releaseVel/cfg.Wheel.Sensitivity/60.0, 1.0/60.0)
	}
	decay.EndDrag()
	for i := 0; i < 180; i++ {
		vel = append(vel, decay.Velocity())
		decay.Step(1.0 / 60.0)
	}
	fmt.Println(asciigraph.Plot(vel,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("inertia velocity decay (rad/s over 3s)"),
	))
	fmt.Println()

	// First card's choreography tracks.
	seq := scroll.DefaultSequence(12)
	ys := make([]float64, 0, 100)
	for i := 0; i < 100; i++ {
		ys = append(ys, seq.Cards[0].At(float64(i)/99).Y)
	}
	fmt.Println(asciigraph.Plot(ys,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("card 0 vertical position over scroll progress"),
	))
	return nil
}

func showAnchor(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadScene(cmd)
	if err != nil {
		return err
	}
	rigCfg := cfg.RigConfig()

	viewports := [][2]int{{1280, 720}, {1024, 768}, {2560, 1080}, {390, 844}}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "viewport\tcamera x\tcamera y\tpivot px\tpivot frac")
	for _, vp := range viewports {
		pose, err := rig.Solve(rigCfg, vp[0], vp[1])
		if err != nil {
			return err
		}
		p, ok := rig.Project(pose, rigCfg.Pivot, vp[0], vp[1])
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%dx%d\t%.3f\t%.3f\t%.1f,%.1f\t%.3f,%.3f\n",
			vp[0], vp[1], pose.Position.X, pose.Position.Y,
			p.X, p.Y, p.X/float64(vp[0]), p.Y/float64(vp[1]))
	}
	return w.Flush()
}

func runTune(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadScene(cmd)
	if err != nil {
		return err
	}

	sweep := tune.Sweep{
		Frictions:     tuneFrictions,
		Sensitivities: tuneSens,
		TargetSettle:  tuneTarget,
	}
	results, best, err := sweep.Run(cmd.Context(), cfg.MotionParams())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "friction\tsensitivity\tsettle (s)\ttravel (rad)")
	for _, r := range results {
		marker := ""
		if r.Candidate == best.Candidate {
			marker = "  <- best"
		}
		fmt.Fprintf(w, "%.2f\t%.4f\t%.2f\t%.3f%s\n",
			r.Friction, r.Sensitivity, r.SettleTime, r.Travel, marker)
	}
	return w.Flush()
}

func listCatalog(cmd *cobra.Command, args []string) error {
	_, records, err := loadScene(cmd)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "id\tname\tmaterial\tdimensions")
	for _, r := range records {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			r.ID, r.DisplayName, r.Spec(catalog.SpecMaterial), r.Spec(catalog.SpecDimensions))
	}
	return w.Flush()
}

func printPreview(cmd *cobra.Command, args []string) error {
	cfg, frame, layoutCfg, err := sceneLayout(cmd)
	if err != nil {
		return err
	}
	fmt.Print(viz.Preview(frame, cfg.RigConfig(), layoutCfg.Axis, viz.DefaultPreviewOptions()))
	return nil
}
