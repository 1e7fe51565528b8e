// Command seatgrid asks for a room layout and prints a socially distanced
// seating plan.
//
// Settings come from SEATGRID_* environment variables (optionally via a .env
// file) and may be overridden by flags:
//
//	seatgrid -seed 42 -backtrack undo -iterative -log-level debug
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/seatgrid/config"
	"github.com/katalvlaran/seatgrid/grid"
	"github.com/katalvlaran/seatgrid/prompt"
	"github.com/katalvlaran/seatgrid/render"
	"github.com/katalvlaran/seatgrid/seating"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "seatgrid:", err)
		}
		os.Exit(1)
	}
}

func run(args []string, in io.Reader, out, errOut io.Writer) error {
	fs := flag.NewFlagSet("seatgrid", flag.ContinueOnError)
	fs.SetOutput(errOut)
	envFile := fs.String("env", "", "`.env file` to load; must exist (default: ./.env if present)")
	seed := fs.Int64("seed", 0, "start-column seed (0 = from env or clock)")
	levelStr := fs.String("log-level", "", "debug|info|warn|error")
	backtrack := fs.String("backtrack", "", "failed-branch policy: leave|undo")
	iterative := fs.Bool("iterative", false, "use the explicit-stack traversal")
	noHeader := fs.Bool("no-header", false, "print only the seat rows, without legend or summary")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var cfg config.Config
	var err error
	if *envFile != "" {
		cfg, err = config.LoadFiles(*envFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *levelStr != "" {
		if cfg.LogLevel, err = config.ParseLogLevel(*levelStr); err != nil {
			return err
		}
	}
	if *backtrack != "" {
		if cfg.Backtrack, err = config.ParseBacktrack(*backtrack); err != nil {
			return err
		}
	}
	if *iterative {
		cfg.Iterative = true
	}
	if *noHeader {
		cfg.Header = false
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := newLogger(errOut, cfg.LogLevel).With("run", uuid.NewString())

	req, err := prompt.NewSession(in, out).Ask()
	if err != nil {
		return err
	}
	if err = req.Validate(); err != nil {
		logger.Error("invalid dimensions", "rows", req.Rows, "seats", req.Cols, "err", err)
		return err
	}
	dist, err := req.Config()
	if err != nil {
		logger.Error("invalid distances", "seat", req.SeatDist, "row", req.RowDist, "err", err)
		return err
	}
	g, err := grid.New(req.Rows, req.Cols)
	if err != nil {
		return err
	}

	logger.Info("search",
		"rows", req.Rows,
		"seats", req.Cols,
		"unit", req.Unit.String(),
		"min_safe", dist.MinSafe,
		"row_dist", dist.RowDist,
		"seat_dist", dist.SeatDist,
		"seed", cfg.Seed,
		"backtrack", cfg.Backtrack.String(),
		"iterative", cfg.Iterative,
	)

	opts := []seating.Option{
		seating.WithSeed(cfg.Seed),
		seating.WithBacktrack(cfg.Backtrack),
		seating.WithOnCommit(func(c grid.Cell, depth int) {
			logger.Debug("commit", "cell", c.String(), "depth", depth)
		}),
	}
	if cfg.Iterative {
		opts = append(opts, seating.WithIterative())
	}

	start := time.Now()
	plan, err := seating.Search(g, dist, opts...)
	if err != nil {
		logger.Error("search failed", "err", err)
		return err
	}
	logger.Info("done",
		"complete", plan.Complete,
		"start", plan.Start.String(),
		"occupied", plan.Grid.OccupiedCount(),
		"candidates", plan.Stats.Candidates,
		"backtracks", plan.Stats.Backtracks,
		"max_depth", plan.Stats.MaxDepth,
		"probes", plan.Stats.Probes,
		"dur", time.Since(start).Round(time.Microsecond),
	)

	if err = render.Text(out, plan.Grid, render.WithHeader(cfg.Header)); err != nil {
		return err
	}
	if !cfg.Header {
		return nil
	}
	return render.Summary(out, plan)
}

func newLogger(w io.Writer, level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
