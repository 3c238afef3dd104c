package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/go-arcade/ordered/internal/script"
	"github.com/go-arcade/ordered/pkg/conf"
	"github.com/go-arcade/ordered/pkg/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newWatchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <script|->",
		Short: "Apply a script, and again on a fresh map every time the config file changes",
		Long: `watch applies the script once, then keeps running. Each change to the
config file given with -c rebuilds the map from the new [map] section and
applies the script again. Flags still override the file. Stop with Ctrl-C.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
			defer stop()
			return watchScript(ctx, cmd, opts, args[0])
		},
	}
}

func watchScript(ctx context.Context, cmd *cobra.Command, opts *options, path string) error {
	if opts.configFile == "" {
		return errors.New("watch needs a config file, pass -c")
	}

	loader := opts.loader()
	cfg, err := loader.Load()
	if err != nil {
		return err
	}
	if err := opts.apply(&cfg); err != nil {
		return err
	}
	logger, err := log.New(&cfg.Log)
	if err != nil {
		return err
	}
	ops, err := readScript(cmd, path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := watchRun(cfg.Map, ops, out, logger); err != nil {
		return err
	}

	// only the latest configuration matters
	reloads := make(chan conf.AppConfig, 1)
	loader.Watch(func(c conf.AppConfig, err error) {
		if err != nil {
			logger.Warnw("ignoring invalid configuration", "file", opts.configFile, "error", err)
			return
		}
		for {
			select {
			case reloads <- c:
				return
			default:
			}
			select {
			case <-reloads:
			default:
			}
		}
	})
	logger.Infow("watching configuration", "file", opts.configFile, "script", path)

	for {
		select {
		case <-ctx.Done():
			logger.Infow("watch stopped", "file", opts.configFile)
			return nil
		case c := <-reloads:
			if err := opts.apply(&c); err != nil {
				logger.Warnw("ignoring invalid configuration", "file", opts.configFile, "error", err)
				continue
			}
			if err := watchRun(c.Map, ops, out, logger); err != nil {
				logger.Errorw("script failed", "script", path, "error", err)
			}
		}
	}
}

// watchRun prints a header naming the map settings, then the script output.
func watchRun(c conf.MapConf, ops []script.Op, out io.Writer, logger log.ILogger) error {
	if _, err := fmt.Fprintf(out, "# capacity=%d hasher=%s\n", c.Capacity, c.Hasher); err != nil {
		return errors.Wrap(err, "write output")
	}
	_, err := applyScript(c, ops, out, logger, true)
	return err
}
