// Command sudokubench drives the benchmark harness from the command
// line: pick a board size and algorithm (or "all" to compare every
// registered backend), run warmup + timed solves, and print aggregate
// statistics.
package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kestrelbound/sudokucore/internal/bench"
	"github.com/kestrelbound/sudokucore/internal/domain"
	"github.com/kestrelbound/sudokucore/internal/solver"
)

type options struct {
	size     int
	algo     string
	runs     int
	warmup   int
	workers  int
	logLevel string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "sudokubench",
		Short: "Benchmark the backtracking and dancing-links Sudoku solvers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.size, "size", 9, "board size: 9, 16, or 25")
	flags.StringVar(&opts.algo, "algorithm", "all", "solver to benchmark: backtrack|dlx|all")
	flags.IntVar(&opts.runs, "runs", 20, "timed runs per worker")
	flags.IntVar(&opts.warmup, "warmup", 2, "untimed runs discarded before timing")
	flags.IntVar(&opts.workers, "workers", 1, "concurrent worker count (1 = single-worker mode)")
	flags.StringVar(&opts.logLevel, "log-level", "info", "debug|info|warn|error")

	return cmd
}

func (o *options) run(ctx context.Context) error {
	logger := log.New()
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if lvl, err := log.ParseLevel(o.logLevel); err == nil {
		logger.SetLevel(lvl)
	}

	board, dim, err := boardForSize(o.size)
	if err != nil {
		return err
	}

	kinds, err := kindsForFlag(o.algo)
	if err != nil {
		return err
	}

	logger.WithFields(log.Fields{
		"size":    o.size,
		"algo":    o.algo,
		"runs":    o.runs,
		"warmup":  o.warmup,
		"workers": o.workers,
	}).Info("starting benchmark")

	cfg := bench.Config{Runs: o.runs, Warmup: o.warmup, Workers: o.workers}
	metrics := bench.NewMetrics()
	results, err := bench.Compare(ctx, kinds, dim, board, cfg, metrics)
	if err != nil {
		return fmt.Errorf("sudokubench: %w", err)
	}

	printResults(results)
	printMetrics(logger, metrics)
	logger.Info("benchmark complete")
	return nil
}

// printMetrics logs the total run/failure counters gathered during
// this invocation. The full histogram is available via
// Metrics.Snapshot for anything that wants to scrape it; this CLI only
// needs the headline counts.
func printMetrics(logger *log.Logger, m *bench.Metrics) {
	families, err := m.Snapshot()
	if err != nil {
		logger.WithError(err).Warn("could not gather benchmark metrics")
		return
	}
	for _, f := range families {
		if f.GetName() != "sudokucore_bench_runs_total" && f.GetName() != "sudokucore_bench_failures_total" {
			continue
		}
		for _, metric := range f.GetMetric() {
			labels := make(log.Fields, len(metric.GetLabel()))
			for _, l := range metric.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			logger.WithFields(labels).WithField("metric", f.GetName()).Info(metric.GetCounter().GetValue())
		}
	}
}

func boardForSize(size int) (*domain.Board, domain.BoardDimension, error) {
	var board *domain.Board
	switch size {
	case 9:
		board = domain.Escargot9x9()
	case 16:
		board = domain.Hard16x16()
	case 25:
		board = domain.Seed25x25()
	default:
		return nil, domain.BoardDimension{}, fmt.Errorf("sudokubench: unsupported --size %d (want 9, 16, or 25)", size)
	}
	return board, board.Dim, nil
}

func kindsForFlag(algo string) ([]solver.Kind, error) {
	switch algo {
	case "all", "":
		return solver.All, nil
	case string(solver.Backtrack):
		return []solver.Kind{solver.Backtrack}, nil
	case string(solver.DLX):
		return []solver.Kind{solver.DLX}, nil
	default:
		return nil, fmt.Errorf("sudokubench: unknown --algorithm %q (want backtrack, dlx, or all)", algo)
	}
}

func printResults(results []*bench.Result) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "ALGORITHM\tWORKERS\tRUNS\tMIN(ms)\tMEAN(ms)\tMEDIAN(ms)\tMAX(ms)\tSTDDEV\tTHROUGHPUT(hz)\tSOLVED")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%d\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.2f\t%d/%d\n",
			r.Algorithm, r.Workers, r.Stats.Runs,
			r.Stats.MinMS, r.Stats.MeanMS, r.Stats.MedianMS, r.Stats.MaxMS, r.Stats.StdDevMS,
			r.Stats.ThroughputHz, r.Stats.SolvedCount, r.Stats.Runs,
		)
	}
}
