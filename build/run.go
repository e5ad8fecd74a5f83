// Package build produces final shaders: it loads sources, expands include
// directives and writes results into destination directory.
package build

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"shinc/common"
	"shinc/config"
	"shinc/include"
	"shinc/source"
	"shinc/state"
)

// Flags returns command line flags of build subcommand, they override values
// from processing configuration.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "match", Aliases: []string{"m"},
			Usage: "directive matching `POLICY` (supported: " + strings.Join(common.MatchPolicyNames(), ", ") + ")"},
		&cli.IntFlag{Name: "max-depth", Usage: "fragment nesting `LEVEL` limit, 0 - single pass without nesting"},
		&cli.StringFlag{Name: "duplicates",
			Usage: "duplicate fragment token `POLICY` (supported: " + strings.Join(common.DuplicatePolicyNames(), ", ") + ")"},
		&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Usage: "`NUMBER` of shaders processed in parallel, 0 - number of CPUs"},
		&cli.BoolFlag{Name: "dry-run", Aliases: []string{"n"}, Usage: "do everything except writing output files"},
	}
}

// Stats summarizes a single run.
type Stats struct {
	Shaders  int
	Written  int
	Ignored  int
	Replaced int
}

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("build")

	if cmd.Args().Len() < 2 {
		return errors.New("both SOURCE and DESTINATION must be specified")
	}
	src, err := filepath.Abs(cmd.Args().Get(0))
	if err != nil {
		return err
	}
	dst, err := filepath.Abs(cmd.Args().Get(1))
	if err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many arguments", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	cfg, err := overrideConfig(env.Cfg.Processing, cmd)
	if err != nil {
		return err
	}
	env.DryRun = cmd.Bool("dry-run")

	if env.Rpt != nil {
		if err := env.Rpt.StoreCopy("source", src); err != nil {
			log.Warn("Unable to store source directory in report", zap.Error(err))
		}
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst),
		zap.Stringer("match", cfg.Match), zap.Int("max_depth", cfg.MaxDepth), zap.Bool("dry_run", env.DryRun))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	stats, err := process(ctx, src, dst, cfg, log)
	if err != nil {
		return err
	}
	log.Info("Shaders processed", zap.Int("shaders", stats.Shaders), zap.Int("written", stats.Written),
		zap.Int("ignored", stats.Ignored), zap.Int("replaced", stats.Replaced))
	return nil
}

func overrideConfig(cfg config.ProcessingConfig, cmd *cli.Command) (config.ProcessingConfig, error) {
	var err error
	if cmd.IsSet("match") {
		if cfg.Match, err = common.ParseMatchPolicy(cmd.String("match")); err != nil {
			return cfg, fmt.Errorf("bad --match value: %w", err)
		}
	}
	if cmd.IsSet("duplicates") {
		if cfg.Duplicates, err = common.ParseDuplicatePolicy(cmd.String("duplicates")); err != nil {
			return cfg, fmt.Errorf("bad --duplicates value: %w", err)
		}
	}
	if cmd.IsSet("max-depth") {
		if cfg.MaxDepth = cmd.Int("max-depth"); cfg.MaxDepth < 0 {
			return cfg, fmt.Errorf("bad --max-depth value: %d", cfg.MaxDepth)
		}
	}
	if cmd.IsSet("workers") {
		if cfg.Workers = cmd.Int("workers"); cfg.Workers < 0 {
			return cfg, fmt.Errorf("bad --workers value: %d", cfg.Workers)
		}
	}
	return cfg, nil
}

func sourceOptions(cfg config.ProcessingConfig) source.Options {
	return source.Options{
		StructsDir:     cfg.StructsDir,
		IgnoreList:     cfg.IgnoreList,
		SkipIgnoreList: cfg.SkipIgnoreList,
		SkipBinary:     cfg.SkipBinary,
	}
}

// process handles the core build logic independently of CLI framework. Any
// error aborts the whole run, outputs already written are left in place.
func process(ctx context.Context, src, dst string, cfg config.ProcessingConfig, log *zap.Logger) (*Stats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	env := state.EnvFromContext(ctx)

	in, err := source.Load(src, sourceOptions(cfg), log.Named("source"))
	if err != nil {
		return nil, err
	}
	set, err := include.NewSet(in.Fragments, cfg.Duplicates)
	if err != nil {
		return nil, err
	}
	engine := include.NewEngine(set, include.Options{Match: cfg.Match, MaxDepth: cfg.MaxDepth})
	log.Debug("Fragments indexed", zap.Strings("tokens", set.Tokens()))

	banner, err := parseBanner(cfg.BannerTemplate)
	if err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	var (
		mu    sync.Mutex
		stats = &Stats{Shaders: len(in.Shaders), Ignored: len(in.Ignored)}
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, sh := range in.Shaders {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			replaced, written, err := processShader(sh, engine, banner, dst, env, log)
			if err != nil {
				return fmt.Errorf("unable to process shader %s: %w", sh.OutputName, err)
			}
			mu.Lock()
			defer mu.Unlock()
			stats.Replaced += replaced
			if written {
				stats.Written++
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return stats, nil
}

func processShader(sh include.Shader, engine *include.Engine, banner *bannerTemplate, dst string, env *state.LocalEnv, log *zap.Logger) (int, bool, error) {
	res, err := engine.Expand(sh.Body)
	if err != nil {
		return 0, false, err
	}

	out := outputPath(dst, sh)
	header, err := banner.expand(Values{
		Source:    sh.OutputName,
		Output:    out,
		Token:     sh.Token,
		Fragments: res.Used,
	})
	if err != nil {
		return 0, false, err
	}
	text := header + res.Text

	if env.DryRun {
		log.Info("Would write shader", zap.String("file", out), zap.Int("replaced", res.Replaced), zap.Strings("fragments", res.Used))
		return res.Replaced, false, nil
	}
	if err := writeOutput(out, text); err != nil {
		return 0, false, err
	}
	env.Rpt.Store("output/"+sh.OutputName, out)
	log.Debug("Shader written", zap.String("file", out), zap.Int("replaced", res.Replaced), zap.Strings("fragments", res.Used))
	return res.Replaced, true, nil
}
