// Command fleury reads an undirected graph from standard input and prints an
// Eulerian path or circuit found with Fleury's algorithm.
//
// Usage:
//
//	fleury [-config file] [-log-level lvl] [-strict] [-restore append|inplace] [-prompts auto|always|never]
//
// Input is V, then E, then E pairs "u v", all whitespace separated. Invalid
// values are discarded and asked for again. The exit status is 0 on success
// and 1 when the configuration is invalid, input ends early, or -strict
// rejects the graph.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/katalvlaran/eulertrail/fleury"
	"github.com/katalvlaran/eulertrail/internal/config"
	"github.com/katalvlaran/eulertrail/internal/console"
	"github.com/katalvlaran/eulertrail/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// 1. Configuration
	cfg, err := config.FromArgs("fleury", args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, "fleury:", err)
		return 1
	}
	set, err := cfg.Resolve()
	if err != nil {
		fmt.Fprintln(stderr, "fleury:", err)
		return 1
	}
	level, policy, mode := set.Level, set.Restore, set.Prompts

	log := logging.New(logging.Options{Out: stderr, Level: level, NoColor: !isTerminal(stderr)})
	log.Debug().Str("source", sourceName(cfg)).Bool("strict", cfg.Tour.Strict).
		Stringer("restore", policy).Stringer("prompts", mode).Msg("configuration loaded")

	// 2. Read the graph
	con := console.New(stdin, stdout,
		console.WithPrompts(console.ShouldPrompt(mode, stdin)),
		console.WithBanner(cfg.Console.Banner),
		console.WithLogger(logging.Component(log, "console")),
	)
	g, err := con.ReadGraph(fleury.WithRestorePolicy(policy))
	if err != nil {
		log.Error().Err(err).Msg("reading graph")
		return 1
	}
	log.Info().Int("vertices", g.VertexCount()).Int("edges", g.EdgeCount()).
		Int("rejected", con.Rejected()).Msg("graph loaded")

	if !cfg.Tour.Strict {
		if err = g.CheckEulerian(); err != nil {
			log.Warn().Err(err).Msg("graph has no Eulerian trail, output is partial")
		}
	}

	// 3. Tour
	var snapshot *fleury.Graph
	if log.GetLevel() <= zerolog.DebugLevel {
		snapshot = g.Clone()
	}
	opts := append(cfg.TourOptions(),
		fleury.WithContext(ctx),
		fleury.WithOnDefer(func(u, v int) {
			log.Trace().Int("u", u).Int("v", v).Msg("bridge deferred")
		}),
	)
	res, err := g.Tour(opts...)
	if err != nil {
		log.Error().Err(err).Msg("tour failed")
		return 1
	}
	if err = con.PrintTrail(res); err != nil {
		log.Error().Err(err).Msg("writing result")
		return 1
	}
	log.Info().Int("start", res.Start).Int("end", res.End()).Int("steps", len(res.Steps)).
		Int("deferred", res.Deferred).Bool("circuit", res.Circuit).Bool("complete", res.Complete).
		Msg("tour finished")

	// 4. Echo check: the printed line must parse back into a valid trail
	if snapshot != nil {
		verify(log, snapshot, res)
	}

	return 0
}

func verify(log zerolog.Logger, snapshot *fleury.Graph, res *fleury.Result) {
	steps, err := fleury.ParseTrail(res.String())
	if err == nil {
		err = fleury.ValidateTrail(snapshot, steps)
	}
	if err != nil {
		log.Debug().Err(err).Msg("trail check failed")
		return
	}
	log.Debug().Msg("trail check passed")
}

func sourceName(cfg config.Config) string {
	if cfg.Source == "" {
		return "defaults"
	}

	return cfg.Source
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}
