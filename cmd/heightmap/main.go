package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"heightfield/internal/logger"
	"heightfield/pkg/config"
	"heightfield/pkg/heightmap"
	"heightfield/pkg/sink"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("heightmap", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to YAML configuration file")
	writeConfig := fs.String("write-config", "", "write the effective configuration to `file` and exit")
	seed := fs.Int64("seed", 0, "noise seed")
	width := fs.Int("width", 0, "image width in pixels")
	height := fs.Int("height", 0, "image height in pixels")
	zoom := fs.Float64("zoom", 0, "pixels per lattice cell")
	offsetX := fs.Float64("offset-x", 0, "x offset in pixels")
	offsetY := fs.Float64("offset-y", 0, "y offset in pixels")
	workers := fs.Int("workers", 0, "sampling goroutines (0 = one per CPU)")
	gradients := fs.String("gradients", "", "gradient derivation (hash, reseed)")
	easing := fs.String("easing", "", "interpolation curve (cubic, quintic)")
	pngPath := fs.String("png", "", "write a grayscale PNG to `file`")
	jsonPath := fs.String("json", "", "write the samples as JSON to `file`")
	ascii := fs.Bool("ascii", false, "print an ASCII preview to stdout")
	logLevel := fs.String("log-level", "", "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadConfig(*configPath); err != nil {
			return err
		}
	}

	// Flags given on the command line win over the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Noise.Seed = *seed
		case "width":
			cfg.Sampling.Width = *width
		case "height":
			cfg.Sampling.Height = *height
		case "zoom":
			cfg.Sampling.Zoom = *zoom
		case "offset-x":
			cfg.Sampling.OffsetX = *offsetX
		case "offset-y":
			cfg.Sampling.OffsetY = *offsetY
		case "workers":
			cfg.Sampling.Workers = *workers
		case "gradients":
			cfg.Noise.Gradients = *gradients
		case "easing":
			cfg.Noise.Easing = *easing
		case "png":
			cfg.Output.PNG = *pngPath
		case "json":
			cfg.Output.JSON = *jsonPath
		case "ascii":
			cfg.Output.ASCII = *ascii
		case "log-level":
			cfg.Logging.Level = *logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		return err
	}

	if *writeConfig != "" {
		return config.SaveConfig(cfg, *writeConfig)
	}

	log, err := newLogger(cfg.Logging, os.Stderr)
	if err != nil {
		return err
	}
	defer log.Close()

	field, err := cfg.Field()
	if err != nil {
		return err
	}

	sinks, err := buildSinks(cfg, stdout)
	if err != nil {
		return err
	}
	if len(sinks) == 0 {
		return errors.New("no output configured (set -png, -json, -ascii or upload)")
	}

	grid := cfg.Grid()
	log.Infof("Sampling %dx%d at zoom %g, offset (%g, %g), seed %d, %s gradients, %s easing",
		grid.Width, grid.Height, grid.Zoom, grid.OffsetX, grid.OffsetY,
		field.Seed(), field.Gradients(), field.Easing())

	start := time.Now()
	hm, err := heightmap.Sample(ctx, field, grid, cfg.Sampling.Workers)
	if err != nil {
		return fmt.Errorf("sampling failed: %w", err)
	}
	stats := hm.Stats()
	log.Debugf("Sampled in %v: min %.4f max %.4f mean %.4f", time.Since(start), stats.Min, stats.Max, stats.Mean)

	for _, s := range sinks {
		log.Infof("Writing %s", s.Name())
	}
	return sinks.Write(ctx, hm)
}

// newLogger logs to console, to cfg.File, or to both. Console output goes
// to stderr because stdout may carry the ASCII preview.
func newLogger(cfg config.LoggingConfig, console *os.File) (*logger.Logger, error) {
	switch {
	case cfg.File != "" && cfg.Console:
		return logger.NewMultiLogger(cfg.Level, cfg.File, console)
	case cfg.File != "":
		return logger.NewFileLogger(cfg.Level, cfg.File)
	case cfg.Console:
		return logger.NewConsoleLogger(cfg.Level, console), nil
	default:
		l := logger.NewConsoleLogger(cfg.Level, console)
		l.SetOutput(io.Discard)
		return l, nil
	}
}

func buildSinks(cfg *config.Config, stdout io.Writer) (sink.Multi, error) {
	var sinks sink.Multi
	if cfg.Output.PNG != "" {
		sinks = append(sinks, sink.PNGSink{Path: cfg.Output.PNG})
	}
	if cfg.Output.JSON != "" {
		sinks = append(sinks, sink.JSONSink{Path: cfg.Output.JSON, Seed: cfg.Noise.Seed})
	}
	if cfg.Output.ASCII {
		sinks = append(sinks, sink.ASCIISink{W: stdout, Charset: cfg.Output.Charset, Columns: cfg.Output.ASCIIColumns})
	}
	if cfg.Upload.Enabled {
		s3Sink, err := sink.NewRegionS3Sink(cfg.Upload.Region, cfg.Upload.Bucket, cfg.Upload.Key, cfg.Upload.CacheSeconds)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, s3Sink)
	}
	return sinks, nil
}
