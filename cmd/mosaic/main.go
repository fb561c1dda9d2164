// SPDX-License-Identifier: EPL-2.0

// Command mosaic rebuilds a target recording out of source frames.
//
// Both the target and the sources are given as frame tables in CSV, as written
// by frame.WriteCSV. The audio files they point at are decoded on demand.
//
//	mosaic -target target.csv -source a.csv,b.csv -out mosaic.wav
//
// Settings are read from MOSAIC_* environment variables (and a .env file) and
// can be overridden by flags.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/ik5/audmosaic"
	"github.com/ik5/audmosaic/cache"
	"github.com/ik5/audmosaic/frame"
	"github.com/ik5/audmosaic/internal/config"
	"github.com/ik5/audmosaic/mosaic"
	"github.com/joho/godotenv"
	"github.com/mdobak/go-xerrors"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

var errUsage = errors.New("-target, -source and -out are required")

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	targetCSV := flag.String("target", "", "target frame table (csv)")
	sourceCSV := flag.String("source", "", "comma separated source frame tables (csv)")
	outPath := flag.String("out", "", "output wav file")
	usagePath := flag.String("usage", "", "optional file receiving the source id used per frame")
	progress := flag.Bool("progress", true, "show a progress bar")

	flag.IntVar(&cfg.SampleRate, "rate", cfg.SampleRate, "sample rate of every file in Hz")
	flag.IntVar(&cfg.Neighbors, "neighbors", cfg.Neighbors, "candidates per target frame")
	flag.Float64Var(&cfg.RandomFactor, "random", cfg.RandomFactor, "random factor in [0, 1]")
	flag.Float64Var(&cfg.Tolerance, "tolerance", cfg.Tolerance, "key strength tolerance on the tonal path")
	flag.BoolVar(&cfg.Tonality, "tonality", cfg.Tonality, "match key and scale before timbre")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "frames resolved concurrently (0=auto)")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0=draw one and log it)")
	flag.BoolVar(&cfg.SkipErrors, "skip-errors", cfg.SkipErrors, "leave failing frames silent instead of aborting")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug | info | warn | error")
	flag.Parse()

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, cfg, logger, *targetCSV, *sourceCSV, *outPath, *usagePath, *progress)
	if err != nil {
		err := xerrors.New(err)
		logger.ErrorContext(ctx, "Mosaic failed.", slog.Any("error", err))
		if errors.Is(err, errUsage) {
			flag.Usage()
		}
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger, targetCSV, sourceCSV, outPath, usagePath string, progress bool) error {
	if targetCSV == "" || sourceCSV == "" || outPath == "" {
		return errUsage
	}

	target, err := readTable(targetCSV)
	if err != nil {
		return err
	}

	var sources []*frame.Table
	for _, path := range strings.Split(sourceCSV, ",") {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		t, err := readTable(path)
		if err != nil {
			return err
		}
		sources = append(sources, t)
	}
	source, err := frame.Concat(sources...)
	if err != nil {
		return fmt.Errorf("merging source tables: %w", err)
	}

	logger.InfoContext(ctx, "Tables loaded.",
		slog.Int("target_frames", target.Len()),
		slog.Int("source_frames", source.Len()),
		slog.Int("source_files", len(source.Paths())),
	)

	opts := mosaic.DefaultOptions()
	opts.Neighbors = cfg.Neighbors
	opts.RandomFactor = cfg.RandomFactor
	opts.Tolerance = cfg.Tolerance
	opts.UseTonality = cfg.Tonality
	opts.Workers = cfg.Workers
	opts.Seed = cfg.Seed
	opts.Logger = logger
	if cfg.SkipErrors {
		opts.Policy = mosaic.SkipFrame
	}

	var p *mpb.Progress
	if progress {
		p = mpb.NewWithContext(ctx, mpb.WithWidth(64), mpb.WithOutput(os.Stderr))
		bar := p.AddBar(int64(target.Len()),
			mpb.PrependDecorators(
				decor.Name("Mosaic: "),
				decor.CountersNoUnit("%d / %d"),
			),
			mpb.AppendDecorators(
				decor.Percentage(),
				decor.AverageETA(decor.ET_STYLE_GO),
			),
		)
		opts.OnFrame = func(int) { bar.Increment() }
	}

	loader := audmosaic.NewLoader(cfg.SampleRate)
	segments := cache.New(loader.Load)

	r, err := mosaic.New(segments, opts)
	if err != nil {
		return err
	}

	res, err := audmosaic.Render(ctx, r, target, source, outPath, cfg.SampleRate)
	if p != nil {
		if err != nil {
			p.Shutdown()
		} else {
			p.Wait()
		}
	}
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "Mosaic written.",
		slog.String("path", outPath),
		slog.Int("samples", len(res.Waveform)),
		slog.Int("skipped", len(res.Skipped)),
		slog.Uint64("seed", res.Seed),
		slog.Int("decoded_files", segments.Len()),
	)

	if usagePath != "" {
		if err := os.WriteFile(usagePath, []byte(strings.Join(res.Usage, "\n")+"\n"), 0o644); err != nil {
			return fmt.Errorf("writing usage log: %w", err)
		}
	}

	return nil
}

func readTable(path string) (*frame.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	t, err := frame.ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return t, nil
}
