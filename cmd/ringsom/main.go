package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/ringsom/export"
	"github.com/katalvlaran/ringsom/internal/model"
	"github.com/katalvlaran/ringsom/internal/storage"
	"github.com/katalvlaran/ringsom/render"
	"github.com/katalvlaran/ringsom/ring"
	"github.com/katalvlaran/ringsom/samples"
	"github.com/katalvlaran/ringsom/solver"
	"github.com/katalvlaran/ringsom/tsp"
	"github.com/katalvlaran/ringsom/vec"
)

const (
	defaultDBPath = "ringsom.db"
	storeUsage    = "store backend: memory|sqlite (memory records live only for this command; sqlite needs a build tagged sqlite)"
)

var errNoRunHistory = errors.New("the memory store keeps no run history between commands; use -store sqlite in a build tagged sqlite")

func isMemoryStore(kind string) bool {
	return kind == "" || kind == "memory"
}

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "solve":
		return runSolve(ctx, args[1:])
	case "gen":
		return runGen(ctx, args[1:])
	case "runs":
		return runRuns(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func runSolve(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	configPath := fs.String("config", "", "optional solve config JSON path")
	iterations := fs.Int("l", solver.DefaultIterations, "number of learning iterations")
	snapshotEvery := fs.Int("p", solver.DefaultSnapshotEvery, "snapshot interval in iterations (0 disables)")
	debug := fs.Int("d", 0, "debug level: 0 info, 1 debug, 2 trace ring growth and pruning")
	seed := fs.Int64("seed", defaultCLISeed, "rng seed")
	spread := fs.Int("spread", ring.DefaultSpread, "learning neighbourhood half-width")
	removeDistance := fs.Float64("remove-distance", ring.DefaultRemoveDistance, "pruning distance")
	noPrune := fs.Bool("no-prune", false, "keep converged neurons")
	noPolish := fs.Bool("no-polish", false, "skip the 2-opt pass over the city tour")
	twoOptMaxIters := fs.Int("two-opt-max-iters", 0, "bound on accepted 2-opt moves (0 = until local optimum)")
	imgDir := fs.String("img", "./img", "frame output directory (empty disables frames)")
	geojsonPath := fs.String("geojson", "", "optional GeoJSON output path")
	storeKind := fs.String("store", storage.DefaultStoreKind(), storeUsage)
	dbPath := fs.String("db-path", defaultDBPath, "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return usageError("solve requires exactly one tsp file")
	}
	source := fs.Arg(0)

	flagValue := map[string]any{
		"l":                 *iterations,
		"p":                 *snapshotEvery,
		"seed":              *seed,
		"spread":            *spread,
		"remove-distance":   *removeDistance,
		"no-prune":          *noPrune,
		"no-polish":         *noPolish,
		"two-opt-max-iters": *twoOptMaxIters,
	}
	setFlags := make(map[string]bool)
	if *configPath == "" {
		for name := range flagValue {
			setFlags[name] = true
		}
	} else {
		fs.Visit(func(f *flag.Flag) {
			setFlags[f.Name] = true
		})
	}

	cfg, err := loadOrDefaultSolveConfig(*configPath)
	if err != nil {
		return err
	}
	if err = overrideFromFlags(&cfg, setFlags, flagValue); err != nil {
		return err
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(os.Stderr, *debug).With(slog.String("component", "solve"))

	cities, err := samples.Load(source)
	if err != nil {
		return err
	}
	box, err := samples.Bounds(cities)
	if err != nil {
		return err
	}
	logger.Info("loaded cities",
		slog.String("source", source),
		slog.Int("cities", len(cities)),
		slog.String("min", box.Min.String()),
		slog.String("max", box.Max.String()),
	)

	hooks, err := solveHooks(logger, cities, box, *imgDir, *debug)
	if err != nil {
		return err
	}

	res, err := solver.Solve(ctx, cities, cfg, hooks)
	if err != nil {
		return err
	}
	logger.Info("solved",
		slog.Int("ring_size", res.RingSize),
		slog.Int("pruned", res.Pruned),
		slog.Float64("tour_cost", res.TourCost),
	)

	positions := res.Ring.Positions()
	if *geojsonPath != "" {
		if err = writeGeoJSONFile(*geojsonPath, cities, positions, res.Tour); err != nil {
			return err
		}
		logger.Debug("wrote geojson", slog.String("path", *geojsonPath))
	}

	runID, err := saveRun(ctx, *storeKind, *dbPath, newRunRecord(source, cities, cfg, res, positions))
	if err != nil {
		return err
	}
	if isMemoryStore(*storeKind) {
		logger.Warn("run record is not persisted", slog.String("store", "memory"), slog.String("run_id", runID))
	}

	fmt.Printf("run_id=%s length=%.6f tour_cost=%.6f ring_size=%d pruned=%d elapsed=%s\n",
		runID,
		res.Length,
		res.TourCost,
		res.RingSize,
		res.Pruned,
		res.Elapsed.Round(time.Millisecond),
	)
	return nil
}

// solveHooks wires frame output and hook tracing into a run.
func solveHooks(logger *slog.Logger, cities []vec.Vector, box vec.Box, imgDir string, debug int) (solver.Hooks, error) {
	var hooks solver.Hooks
	if imgDir != "" {
		proj, err := render.NewProjection(box, render.DefaultWidth, render.DefaultHeight)
		if err != nil {
			return solver.Hooks{}, err
		}
		frames := logger.With(slog.String("component", "render"))
		hooks.OnSnapshot = func(iter int, positions []vec.Vector) error {
			path := render.FramePath(imgDir, iter)
			caption := fmt.Sprintf("iteration %d, %d neurons", iter, len(positions))
			if err := render.SaveFrame(path, proj, cities, positions, caption); err != nil {
				return err
			}
			frames.Debug("frame", slog.Int("iter", iter), slog.String("path", path))
			return nil
		}
	}
	if debug >= 2 {
		trace := logger.With(slog.String("component", "ring"))
		hooks.OnInsert = func(parent, child ring.NeuronID, at vec.Vector) {
			trace.Debug("insert", slog.Any("parent", parent), slog.Any("child", child), slog.String("at", at.String()))
		}
		hooks.OnRemove = func(keeper, removed ring.NeuronID, at vec.Vector) {
			trace.Debug("remove", slog.Any("keeper", keeper), slog.Any("removed", removed), slog.String("at", at.String()))
		}
	}

	return hooks, nil
}

func newLogger(w io.Writer, debug int) *slog.Logger {
	level := slog.LevelInfo
	if debug > 0 {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func writeGeoJSONFile(path string, cities, positions []vec.Vector, tour []int) error {
	fc, err := export.FeatureCollection(cities, positions, tour)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = export.WriteGeoJSON(f, fc); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func newRunRecord(source string, cities []vec.Vector, cfg solver.Config, res solver.Result, positions []vec.Vector) model.Run {
	points := make([]model.Point, len(positions))
	for i, p := range positions {
		points[i] = model.Point{X: p.X, Y: p.Y}
	}
	return model.Run{
		VersionedRecord: storage.Versioned(),
		ID:              uuid.NewString(),
		Source:          source,
		Cities:          len(cities),
		Iterations:      res.Iterations,
		Seed:            cfg.Seed,
		RingSize:        res.RingSize,
		RingLength:      res.Length,
		Pruned:          res.Pruned,
		TourCost:        res.TourCost,
		Tour:            res.Tour,
		Ring:            points,
		CreatedAt:       time.Now().UTC(),
		ElapsedMS:       res.Elapsed.Milliseconds(),
	}
}

func saveRun(ctx context.Context, storeKind, dbPath string, record model.Run) (string, error) {
	store, err := storage.NewStore(storeKind, dbPath)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = storage.CloseIfSupported(store)
	}()

	if err = store.Init(ctx); err != nil {
		return "", err
	}
	if err = store.SaveRun(ctx, record); err != nil {
		return "", err
	}
	return record.ID, nil
}

func runGen(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	shape := fs.String("shape", "uniform", "instance shape: circle|uniform|clusters")
	n := fs.Int("n", 100, "number of cities")
	k := fs.Int("k", 4, "number of clusters for shape=clusters")
	size := fs.Float64("size", 1000, "side of the square the cities are drawn in")
	seed := fs.Int64("seed", defaultCLISeed, "rng seed")
	out := fs.String("o", "", "output tsp file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *out == "" {
		return usageError("gen requires -o")
	}

	pts, err := generate(*shape, *n, *k, *size, *seed)
	if err != nil {
		return err
	}
	if err = samples.Save(*out, pts); err != nil {
		return err
	}

	fmt.Printf("wrote %d cities shape=%s to %s\n", len(pts), *shape, *out)
	return nil
}

func generate(shape string, n, k int, size float64, seed int64) ([]vec.Vector, error) {
	box := vec.Box{Min: vec.New(0, 0), Max: vec.New(size, size)}
	switch shape {
	case "circle":
		return samples.Circle(n, size/2, box.Center())
	case "uniform":
		return samples.Uniform(n, box, seed)
	case "clusters":
		return samples.Clusters(n, k, box, seed)
	default:
		return nil, fmt.Errorf("unsupported shape: %s", shape)
	}
}

func runRuns(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), storeUsage)
	dbPath := fs.String("db-path", defaultDBPath, "sqlite database path")
	runID := fs.String("id", "", "show a single run")
	limit := fs.Int("limit", 20, "max runs to list")
	jsonOut := fs.Bool("json", false, "emit JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *limit <= 0 {
		return errors.New("limit must be > 0")
	}
	if isMemoryStore(*storeKind) {
		return errNoRunHistory
	}

	store, err := storage.NewStore(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = storage.CloseIfSupported(store)
	}()
	if err = store.Init(ctx); err != nil {
		return err
	}

	if *runID != "" {
		rec, ok, err := store.GetRun(ctx, *runID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("run not found: %s", *runID)
		}
		if *jsonOut {
			return printJSON(rec)
		}
		printRun(rec)
		fmt.Printf("tour %s\n", tsp.DebugString(rec.Tour))
		return nil
	}

	runs, err := store.ListRuns(ctx, *limit)
	if err != nil {
		return err
	}
	if *jsonOut {
		return printJSON(runs)
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}
	for _, rec := range runs {
		printRun(rec)
	}
	return nil
}

func printRun(rec model.Run) {
	fmt.Printf("run_id=%s created_at=%s source=%s cities=%d iterations=%d seed=%d ring_size=%d ring_length=%.6f pruned=%d tour_cost=%.6f elapsed_ms=%d\n",
		rec.ID,
		rec.CreatedAt.Format(time.RFC3339),
		rec.Source,
		rec.Cities,
		rec.Iterations,
		rec.Seed,
		rec.RingSize,
		rec.RingLength,
		rec.Pruned,
		rec.TourCost,
		rec.ElapsedMS,
	)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: ringsom <solve|gen|runs> [flags]", msg)
}
