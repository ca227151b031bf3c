package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hupe1980/polygo"
	"github.com/hupe1980/polygo/geom"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mathext/prng"
	"gonum.org/v1/gonum/stat/distuv"
)

type runOptions struct {
	polygon      string
	blocks       int
	offset       float64
	points       int
	seed         uint64
	coefficients int
	workers      int
	logFormat    string
	logLevel     string
}

func newRunCmd() *cobra.Command {
	o := runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every query against a row of replicated polygons",
		Long: `Reads a polygon from a file with one "x y" vertex per line, adds it
--blocks times shifted by --offset along x, samples --points random points
over the padded extent and times each batch query.

Examples:
  polybench run --polygon polygon.txt
  polybench run --polygon polygon.txt --points 200000 --workers 8 --log-format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBenchmark(cmd, o)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.polygon, "polygon", "", "polygon file with one \"x y\" vertex per line")
	f.IntVar(&o.blocks, "blocks", 5, "number of polygon copies")
	f.Float64Var(&o.offset, "offset", 5, "x shift between copies")
	f.IntVar(&o.points, "points", 50_000, "number of query points")
	f.Uint64Var(&o.seed, "seed", 1, "random seed for query points and coefficients")
	f.IntVar(&o.coefficients, "coefficients", 2, "coefficients per vertex (0 skips custom distances)")
	f.IntVar(&o.workers, "workers", 0, "batch workers (0 uses GOMAXPROCS)")
	f.StringVar(&o.logFormat, "log-format", "text", "log format: text or json")
	f.StringVar(&o.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	_ = cmd.MarkFlagRequired("polygon")

	return cmd
}

func newLogger(format, level string) (*polygo.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q", level)
	}
	switch format {
	case "text":
		return polygo.NewTextLogger(lvl), nil
	case "json":
		return polygo.NewJSONLogger(lvl), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q: want text or json", format)
	}
}

func runBenchmark(cmd *cobra.Command, o runOptions) error {
	if o.blocks < 1 || o.points < 0 || o.coefficients < 0 {
		return fmt.Errorf("--blocks must be positive, --points and --coefficients must not be negative")
	}

	logger, err := newLogger(o.logFormat, o.logLevel)
	if err != nil {
		return err
	}

	base, err := readPolygonFile(o.polygon)
	if err != nil {
		return err
	}

	pc, err := polygo.New(o.coefficients, polygo.WithLogger(logger), polygo.WithWorkers(o.workers))
	if err != nil {
		return err
	}
	defer pc.Close()

	src := prng.NewMT19937()
	src.Seed(o.seed)
	unit := distuv.Uniform{Min: 0, Max: 1, Src: src}

	extent := geom.EmptyBox()
	for i := range o.blocks {
		r := base.shifted(float64(i) * o.offset)
		n := len(r.xs)

		tags := make([]int, n)
		for j := range tags {
			tags[j] = i*n + j
		}
		coeffs := make([]float64, o.coefficients*n)
		for j := range coeffs {
			coeffs[j] = unit.Rand()
		}

		if err := pc.AddPolygon(r.xs, r.ys, tags, coeffs); err != nil {
			return err
		}
		extent = extent.Union(r.bounds())
	}

	xs, ys := samplePoints(src, extent, 1, o.points)
	res, err := runQueries(cmd.Context(), pc, xs, ys, o.coefficients > 0, logger)
	if err != nil {
		return err
	}

	st := pc.Stats()
	fmt.Fprintf(cmd.OutOrStdout(), "polygons=%d vertices=%d points=%d contained=%d\n",
		st.Polygons, st.Vertices, len(xs), res.contained)
	fmt.Fprintf(cmd.OutOrStdout(), "time elapsed in benchmark: %v\n", res.elapsed)
	return nil
}

// samplePoints draws n points uniformly from extent grown by pad on every side.
func samplePoints(src *prng.MT19937, extent geom.Box, pad float64, n int) (xs, ys []float64) {
	ux := distuv.Uniform{Min: extent.Min.X - pad, Max: extent.Max.X + pad, Src: src}
	uy := distuv.Uniform{Min: extent.Min.Y - pad, Max: extent.Max.Y + pad, Src: src}

	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := range n {
		xs[i] = ux.Rand()
		ys[i] = uy.Rand()
	}
	return xs, ys
}

type step struct {
	name string
	fn   func() error
}

type benchResult struct {
	contained int
	elapsed   time.Duration
}

func runQueries(ctx context.Context, pc *polygo.Context, xs, ys []float64, custom bool, logger *polygo.Logger) (benchResult, error) {
	var res benchResult

	timed := func(name string, fn func() error) error {
		start := time.Now()
		if err := fn(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		d := time.Since(start)
		res.elapsed += d
		logger.InfoContext(ctx, "benchmark query", "query", name, "points", len(xs), "elapsed", d)
		return nil
	}

	steps := []step{
		{polygo.QueryDistancesToEdges, func() error {
			_, err := pc.DistancesToEdges(ctx, xs, ys)
			return err
		}},
		{polygo.QueryDistancesToVertices, func() error {
			_, err := pc.DistancesToVertices(ctx, xs, ys)
			return err
		}},
		{polygo.QueryClosestVertexTags, func() error {
			_, err := pc.ClosestVertexTags(ctx, xs, ys)
			return err
		}},
		{polygo.QueryContainedPoints, func() error {
			bm, err := pc.ContainedPoints(ctx, xs, ys)
			if err == nil {
				res.contained = int(bm.GetCardinality())
			}
			return err
		}},
	}
	if custom {
		steps = append(steps, step{polygo.QueryCustomVertexDistances, func() error {
			_, err := pc.CustomVertexDistances(ctx, xs, ys)
			return err
		}})
	}

	for _, s := range steps {
		if err := timed(s.name, s.fn); err != nil {
			return benchResult{}, err
		}
	}
	return res, nil
}
