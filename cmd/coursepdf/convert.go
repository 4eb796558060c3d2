package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	coursepdf "github.com/alnah/go-coursepdf"
	"github.com/alnah/go-coursepdf/internal/config"
	"github.com/alnah/go-coursepdf/internal/hints"
)

// defaultConfigName is looked up when --config is not given.
// Its absence is not an error.
const defaultConfigName = "coursepdf"

// runConvert runs the batches of a conversion command and, with --watch,
// keeps converting changed sources until ctx is canceled.
func runConvert(ctx context.Context, command string, args []string, flags *convertFlags, env *Environment, logger *slog.Logger) error {
	profiles, err := profilesFor(command)
	if err != nil {
		return err
	}
	if len(args) > 1 || (len(args) == 1 && len(profiles) > 1) {
		return fmt.Errorf("%w: %s takes at most one directory, got %q", ErrInvalidArgs, command, args)
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	workers, err := resolveWorkers(flags.workers, flags.workersSet, cfg.Workers)
	if err != nil {
		return err
	}

	opts, err := converterOptions(cfg)
	if err != nil {
		return err
	}

	logger.Debug("starting", "command", command, "workers", workers, "timeout", cfg.Timeout)

	pool := env.NewPool(workers, opts...)
	defer func() {
		if err := pool.Close(); err != nil {
			logger.Warn("closing converters", "error", err)
		}
	}()

	// Templates and assets load when the first converter is built: fail the
	// run here rather than report the same setup error for every file.
	conv, err := pool.Acquire()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConverterInit, err)
	}
	pool.Release(conv)

	report := reportOptions{quiet: flags.common.quiet, verbose: flags.common.verbose}
	targets := make([]batchTarget, 0, len(profiles))
	var total ResultSummary
	start := env.Now()

	for _, p := range profiles {
		target := resolveTarget(p, args, flags.output, cfg)
		targets = append(targets, target)

		summary, err := runBatch(ctx, pool, target, flags, env, logger, report)
		if err != nil {
			return err
		}
		total.add(summary)

		if ctx.Err() != nil {
			return fmt.Errorf("interrupted: %w", ctx.Err())
		}
	}

	logger.Debug("finished", "succeeded", total.Succeeded, "failed", total.Failed,
		"elapsed", env.Now().Sub(start))

	if flags.watch {
		return watchSources(ctx, targets, pool, flags, env, logger, report)
	}

	if cfg.Strict && total.Failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrBatchFailed, total.Failed, total.Total())
	}
	return nil
}

// runBatch discovers and converts one target, printing its report.
func runBatch(ctx context.Context, pool Pool, target batchTarget, flags *convertFlags, env *Environment, logger *slog.Logger, report reportOptions) (ResultSummary, error) {
	files, err := discoverFiles(target)
	if errors.Is(err, ErrNoInputDir) {
		// A missing directory ends this batch like an empty one.
		logger.Warn("skipping batch", "command", target.profile.command, "error", err)
		err = nil
	}
	if err != nil {
		return ResultSummary{}, err
	}
	if len(files) == 0 {
		if !report.quiet {
			fmt.Fprintln(env.Stdout, target.profile.emptyMessage)
		}
		return ResultSummary{}, nil
	}

	printFound(env.Stdout, target.profile, len(files), report)
	results := convertBatch(ctx, pool, files, &batchParams{
		kind:      target.profile.kind,
		writeHTML: flags.html,
		logger:    logger,
	})
	return printResults(env.Stdout, target, results, report), nil
}

// loadConfig loads --config when given, otherwise the default config if one
// exists, otherwise built-in defaults.
func loadConfig(nameOrPath string) (*config.Config, error) {
	if nameOrPath == "" {
		cfg, err := config.LoadConfig(defaultConfigName)
		if errors.Is(err, config.ErrConfigNotFound) {
			return config.DefaultConfig(), nil
		}
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return cfg, nil
	}

	cfg, err := config.LoadConfig(nameOrPath)
	if errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(nameOrPath)))
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags applies explicitly set CLI flags over the config.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.timeout != "" {
		cfg.Timeout = flags.timeout
	}
	if flags.titles != "" {
		cfg.TitlesFile = flags.titles
	}
	if flags.style != "" {
		cfg.Highlight.Style = flags.style
	}
	if flags.assetPath != "" {
		cfg.Assets.BasePath = flags.assetPath
	}
	if flags.strict {
		cfg.Strict = true
	}
}

// converterOptions translates a validated config into converter options.
func converterOptions(cfg *config.Config) ([]coursepdf.Option, error) {
	titles, err := cfg.ResolveTitles()
	if err != nil {
		return nil, fmt.Errorf("loading titles: %w", err)
	}

	opts := []coursepdf.Option{
		coursepdf.WithHighlight(cfg.Highlight.Language, cfg.Highlight.Style),
		coursepdf.WithTitles(titles),
	}
	if d := cfg.TimeoutDuration(); d > 0 {
		opts = append(opts, coursepdf.WithTimeout(d))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, coursepdf.WithAssetPath(cfg.Assets.BasePath))
	}
	return opts, nil
}
