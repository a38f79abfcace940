package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/rbhatt/numlab/internal/analysis"
	"github.com/rbhatt/numlab/internal/config"
	"github.com/rbhatt/numlab/internal/lab"
	"github.com/rbhatt/numlab/internal/numeric"
	"github.com/rbhatt/numlab/internal/poly"
	"github.com/rbhatt/numlab/internal/roots"
	"github.com/rbhatt/numlab/internal/storage"
	"github.com/rbhatt/numlab/internal/viz"
)

var (
	dataDir string
	dt      float64
	steps   int
	total   float64
	y0Flag  []float64
	method  string
	// Square root parameters
	sqrtGuess float64
	sqrtTerms int
	sqrtTol   float64
	// Legendre parameters
	degree int
	points int
	noPlot bool
	// Convergence study
	levels int
	baseN  int
	// Config file
	configFile string
	// Frame rate for live view
	frameRate int
	// Preset name
	preset string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "numlab",
		Short: "numerical methods lab: ODE steppers, Taylor square roots, Legendre polynomials",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".numlab", "data directory")

	solveCmd := &cobra.Command{
		Use:   "solve [problem]",
		Short: "integrate an ODE with a fixed-step method",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}
	solveCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "step size")
	solveCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "step count")
	solveCmd.Flags().Float64Var(&total, "time", 0, "total time (overrides dt: h = time/steps)")
	solveCmd.Flags().Float64SliceVar(&y0Flag, "y0", nil, "initial state")
	solveCmd.Flags().StringVar(&method, "method", "rk4", "stepping method (euler, rk4)")
	solveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	solveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	compareCmd := &cobra.Command{
		Use:   "compare [problem]",
		Short: "convergence table for every method on one problem",
		Args:  cobra.ExactArgs(1),
		RunE:  runCompare,
	}
	compareCmd.Flags().Float64Var(&total, "time", 1.0, "total integration time")
	compareCmd.Flags().IntVar(&baseN, "base-steps", 10, "step count of the coarsest level")
	compareCmd.Flags().IntVar(&levels, "levels", 5, "number of h-halvings")
	compareCmd.Flags().Float64SliceVar(&y0Flag, "y0", nil, "initial state")

	sqrtCmd := &cobra.Command{
		Use:   "sqrt [value]",
		Short: "approximate a square root by iterated Taylor expansion",
		Args:  cobra.ExactArgs(1),
		RunE:  runSqrt,
	}
	sqrtCmd.Flags().Float64Var(&sqrtGuess, "guess", config.DefaultGuess, "initial guess")
	sqrtCmd.Flags().IntVar(&sqrtTerms, "terms", config.DefaultTerms, "Taylor terms kept per iteration")
	sqrtCmd.Flags().Float64Var(&sqrtTol, "tol", config.DefaultTol, "stopping tolerance on |x^2-a|")

	legendreCmd := &cobra.Command{
		Use:   "legendre",
		Short: "compute and plot Legendre polynomials",
		RunE:  runLegendre,
	}
	legendreCmd.Flags().IntVar(&degree, "degree", 3, "maximum degree")
	legendreCmd.Flags().IntVar(&points, "points", 500, "evaluation points on [-1,1]")
	legendreCmd.Flags().BoolVar(&noPlot, "no-plot", false, "print the value table instead of plotting")

	liveCmd := &cobra.Command{
		Use:   "live [problem]",
		Short: "integrate with a live terminal view",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "step size")
	liveCmd.Flags().IntVar(&steps, "steps", 5000, "step count")
	liveCmd.Flags().Float64SliceVar(&y0Flag, "y0", nil, "initial state")
	liveCmd.Flags().StringVar(&method, "method", "rk4", "stepping method")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "write run trajectory to stdout as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [problem]",
		Short: "list available presets for a problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for problem: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range names {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(solveCmd, compareCmd, sqrtCmd, legendreCmd, liveCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	problem := args[0]

	if preset != "" {
		cfg := config.GetPreset(problem, preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(problem))
		}
		dt = cfg.Dt
		steps = cfg.Steps
		method = cfg.Method
		y0Flag = cfg.InitState
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("dt") {
			dt = cfg.Dt
		}
		if !cmd.Flags().Changed("steps") {
			steps = cfg.Steps
		}
		if !cmd.Flags().Changed("method") {
			method = cfg.Method
		}
		if !cmd.Flags().Changed("y0") && len(cfg.InitState) > 0 {
			y0Flag = cfg.InitState
		}
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	registry := lab.NewRegistry()
	sys, err := registry.GetProblem(problem)
	if err != nil {
		return err
	}
	m, err := registry.GetMethod(method)
	if err != nil {
		return err
	}

	initState := registry.DefaultInitState(problem)
	if len(y0Flag) > 0 {
		initState = numeric.State(y0Flag).Clone()
	}

	h := dt
	if total > 0 {
		h = total / float64(steps)
	}

	exp := lab.New(lab.Config{
		Problem:   problem,
		Method:    method,
		InitState: initState,
		Dt:        h,
		Steps:     steps,
	})
	if err := exp.Setup(sys, m); err != nil {
		return err
	}

	fmt.Printf("solving %s with %s...\n", problem, method)
	start := time.Now()

	tr, err := exp.Run(context.Background())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := st.Save(problem, method, h, tr)
	if err != nil {
		return err
	}

	tFinal, yFinal := tr.Final()
	exact := sys.Exact(tFinal, initState)

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("nodes: %d\n", tr.Len())
	fmt.Printf("y(%.4f) = %v\n", tFinal, []float64(yFinal))
	fmt.Printf("exact   = %v\n", []float64(exact))
	fmt.Printf("endpoint error: %.3e\n", yFinal.Sub(exact).Norm())

	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	problem := args[0]

	registry := lab.NewRegistry()
	sys, err := registry.GetProblem(problem)
	if err != nil {
		return err
	}

	initState := registry.DefaultInitState(problem)
	if len(y0Flag) > 0 {
		initState = numeric.State(y0Flag).Clone()
	}
	exact := func(t float64) numeric.State { return sys.Exact(t, initState) }

	fmt.Printf("convergence on %s over [0, %.2f]\n\n", problem, total)

	for _, name := range registry.ListMethods() {
		factory, err := registry.MethodFactory(name)
		if err != nil {
			return err
		}

		lvls, err := analysis.Convergence(sys, exact, initState, total, baseN, levels, factory)
		if err != nil {
			return err
		}

		fmt.Println(viz.HeaderStyle.Render(name))
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "STEPS\tH\tENDPOINT ERR\tRATIO")
		for _, lv := range lvls {
			ratio := "-"
			if lv.Ratio > 0 {
				ratio = fmt.Sprintf("%.2f", lv.Ratio)
			}
			fmt.Fprintf(w, "%d\t%.6f\t%.3e\t%s\n", lv.Steps, lv.H, lv.Err, ratio)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Printf("observed order: %.2f\n\n", analysis.ObservedOrder(lvls))
	}

	return nil
}

func runSqrt(cmd *cobra.Command, args []string) error {
	a, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid value: %s", args[0])
	}

	s := roots.NewTaylorSqrt(sqrtTerms, sqrtTol)
	value, iters, err := s.Approx(a, sqrtGuess)
	if err != nil {
		return err
	}

	fmt.Printf("sqrt(%g) = %.12g\n", a, value)
	fmt.Printf("iterations: %d\n", iters)
	fmt.Printf("relative error vs math.Sqrt: %.3e\n", roots.RelativeError(value, a))
	return nil
}

func runLegendre(cmd *cobra.Command, args []string) error {
	if noPlot {
		// The table uses a coarse grid so the rows stay readable.
		n := points
		if n > 11 {
			n = 11
		}
		xs := poly.Linspace(-1, 1, n)
		rows, err := poly.Legendre(xs, degree)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		header := []string{"x"}
		for d := 0; d <= degree; d++ {
			header = append(header, fmt.Sprintf("L%d", d))
		}
		fmt.Fprintln(w, strings.Join(header, "\t"))
		for i, x := range xs {
			row := []string{fmt.Sprintf("%+.4f", x)}
			for d := 0; d <= degree; d++ {
				row = append(row, fmt.Sprintf("%+.6f", rows[d][i]))
			}
			fmt.Fprintln(w, strings.Join(row, "\t"))
		}
		return w.Flush()
	}

	xs := poly.Linspace(-1, 1, points)
	rows, err := poly.Legendre(xs, degree)
	if err != nil {
		return err
	}
	fmt.Println(viz.LegendrePlot(rows, 0, 0))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	problem := args[0]

	registry := lab.NewRegistry()
	sys, err := registry.GetProblem(problem)
	if err != nil {
		return err
	}
	m, err := registry.GetMethod(method)
	if err != nil {
		return err
	}

	initState := registry.DefaultInitState(problem)
	if len(y0Flag) > 0 {
		initState = numeric.State(y0Flag).Clone()
	}

	return viz.RunLive(viz.NewLive(problem, sys, m, initState, dt, steps, frameRate))
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPROBLEM\tTIME\tSTEPS\tDT\tMETHOD")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.4f\t%s\n",
			run.ID,
			run.Problem,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Steps,
			run.Dt,
			run.Method,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	tr, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}
	if tr.Len() == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("problem: %s\n", meta.Problem)
	fmt.Printf("nodes: %d\n\n", tr.Len())

	labels := labelsFor(meta.Problem)
	fmt.Print(viz.TrajectoryPlot(tr, labels, 80, 10))
	return nil
}

func labelsFor(problem string) []string {
	switch problem {
	case "oscillator":
		return []string{"position", "velocity"}
	case "decay":
		return []string{"y (decaying)"}
	case "logistic":
		return []string{"population"}
	default:
		return nil
	}
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	tr, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	header := []string{"time"}
	for i := 0; i < tr.Dim(); i++ {
		header = append(header, fmt.Sprintf("y%d", i))
	}
	fmt.Println(strings.Join(header, ","))

	for i := 0; i < tr.Len(); i++ {
		t, y := tr.At(i)
		row := []string{strconv.FormatFloat(t, 'g', -1, 64)}
		for _, v := range y {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		fmt.Println(strings.Join(row, ","))
	}
	return nil
}
