// Endless - Continuous Playback Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/endless

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/tomtom215/endless/internal/boundary"
	"github.com/tomtom215/endless/internal/config"
	"github.com/tomtom215/endless/internal/logging"
	"github.com/tomtom215/endless/internal/metrics"
	"github.com/tomtom215/endless/internal/recommend"
)

// Exit codes.
const (
	exitOK           = 0
	exitFailure      = 1
	exitUsage        = 2
	exitSeedNotFound = 3
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// options holds parsed command-line flags.
type options struct {
	configPath  string
	seed        string
	exclude     string
	limit       int
	limitSet    bool
	requestPath string
	metricsOut  string
	command     string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("endless", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "config file path (overrides "+config.ConfigPathEnvVar+")")
	fs.StringVar(&opts.seed, "seed", "", "seed track id")
	fs.StringVar(&opts.exclude, "exclude", "", "comma-separated track ids to exclude")
	fs.IntVar(&opts.limit, "limit", recommend.DefaultLimit, "number of tracks to return")
	fs.StringVar(&opts.requestPath, "request", "", `JSON request file, "-" for stdin`)
	fs.StringVar(&opts.metricsOut, "metrics-out", "", "write Prometheus metrics to this file on exit")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: endless [flags] recommend|catalog")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "limit" {
			opts.limitSet = true
		}
	})

	switch fs.NArg() {
	case 0:
		opts.command = "recommend"
	case 1:
		opts.command = fs.Arg(0)
	default:
		fs.Usage()
		return nil, fmt.Errorf("expected one command, got %d", fs.NArg())
	}
	if opts.command != "recommend" && opts.command != "catalog" {
		fs.Usage()
		return nil, fmt.Errorf("unknown command %q", opts.command)
	}
	return opts, nil
}

// run executes one invocation and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	cfg, err := config.LoadFrom(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load configuration: %v\n", err)
		return exitFailure
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    stderr,
	})

	if opts.metricsOut != "" {
		defer func() {
			if err := metrics.WriteTextfile(opts.metricsOut); err != nil {
				logging.Error().Err(err).Str("path", opts.metricsOut).Msg("failed to write metrics")
			}
		}()
	}

	a, err := build(ctx, cfg, logging.WithComponent("endless"))
	if err != nil {
		logging.Error().Err(err).Msg("failed to initialize")
		return exitFailure
	}
	defer a.Close()

	switch opts.command {
	case "catalog":
		return writeOut(stdout, a.catalog.Summaries())
	default:
		return recommendCmd(ctx, a, opts, stdin, stdout)
	}
}

func recommendCmd(ctx context.Context, a *app, opts *options, stdin io.Reader, stdout io.Writer) int {
	req, err := buildRequest(opts, stdin)
	if err != nil {
		logging.Error().Err(err).Msg("invalid request")
		return exitUsage
	}

	if verr := req.Validate(); verr != nil {
		logging.Warn().Err(verr).Msg("request validation failed")
		if code := writeOut(stdout, boundary.NewErrorResponse(verr)); code != exitOK {
			return code
		}
		return exitUsage
	}

	ctx = logging.ContextWithNewRequestID(ctx)
	res, err := a.engine.Recommend(ctx, req.ToRequest(a.engine.DefaultLimit()))
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Msg("recommendation failed")
		return exitFailure
	}

	if code := writeOut(stdout, boundary.NewResponse(res)); code != exitOK {
		return code
	}
	if res.Status == recommend.StatusSeedNotFound {
		return exitSeedNotFound
	}
	return exitOK
}

// buildRequest assembles the boundary request from -request or the -seed flags.
func buildRequest(opts *options, stdin io.Reader) (boundary.RecommendationRequest, error) {
	if opts.requestPath != "" {
		if opts.requestPath == "-" {
			return boundary.DecodeRequest(stdin)
		}
		f, err := os.Open(opts.requestPath)
		if err != nil {
			return boundary.RecommendationRequest{}, fmt.Errorf("open request file: %w", err)
		}
		defer func() { _ = f.Close() }()
		return boundary.DecodeRequest(f)
	}

	req := boundary.RecommendationRequest{
		SeedTrackID:    opts.seed,
		UserHistoryIDs: splitIDs(opts.exclude),
	}
	if opts.limitSet {
		limit := opts.limit
		req.Limit = &limit
	}
	return req, nil
}

// splitIDs splits a comma list, dropping blanks.
func splitIDs(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func writeOut(w io.Writer, v interface{}) int {
	if err := boundary.WriteJSON(w, v); err != nil {
		logging.Error().Err(err).Msg("failed to write output")
		return exitFailure
	}
	return exitOK
}
