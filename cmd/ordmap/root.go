package main

import (
	"io"
	"os"

	"github.com/go-arcade/ordered/internal/script"
	"github.com/go-arcade/ordered/pkg/conf"
	"github.com/go-arcade/ordered/pkg/hasher"
	"github.com/go-arcade/ordered/pkg/log"
	"github.com/go-arcade/ordered/pkg/orderedmap"
	"github.com/go-arcade/ordered/pkg/version"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type options struct {
	configFile string
	capacity   int
	hasher     string
}

func newRootCmd() *cobra.Command {
	opts := &options{capacity: -1}

	rootCmd := &cobra.Command{
		Use:           "ordmap",
		Short:         "ordmap runs operation scripts against an insertion-ordered map",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "conf", "c", "", "config file path, e.g. -c ./conf.d/config.toml")
	rootCmd.PersistentFlags().IntVar(&opts.capacity, "capacity", -1, "preallocated entries, overrides map.capacity")
	rootCmd.PersistentFlags().StringVar(&opts.hasher, "hasher", "", "hashing strategy: default, xxhash, city, foldcase")

	rootCmd.AddCommand(
		newRunCmd(opts, "run", "Apply a script and print the results", false),
		newRunCmd(opts, "verify", "Apply a script, checking map consistency after every operation", true),
		newWatchCmd(opts),
		version.NewCmd(),
	)
	return rootCmd
}

func newRunCmd(opts *options, use, short string, verify bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <script|->",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd, opts, args[0], verify)
		},
	}
}

// loader reads the config file named by -c. The CLI writes results to
// stdout, so logs default to stderr unless the config says otherwise.
func (o *options) loader() *conf.Loader {
	l := conf.NewLoader(o.configFile)
	l.SetDefault("log.output", "stderr")
	return l
}

// apply lays the command line flags over cfg.
func (o *options) apply(cfg *conf.AppConfig) error {
	if o.capacity >= 0 {
		cfg.Map.Capacity = o.capacity
	}
	if o.hasher != "" {
		cfg.Map.Hasher = o.hasher
	}
	return cfg.Validate()
}

func (o *options) load() (conf.AppConfig, error) {
	cfg, err := o.loader().Load()
	if err != nil {
		return cfg, err
	}
	return cfg, o.apply(&cfg)
}

func newMap(c conf.MapConf) (*orderedmap.Map[string, string], error) {
	h, err := hasher.ByName(c.Hasher)
	if err != nil {
		return nil, err
	}
	return orderedmap.WithCapacityAndHasher[string, string](c.Capacity, h), nil
}

func readScript(cmd *cobra.Command, path string) ([]script.Op, error) {
	var in io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "open script")
		}
		defer f.Close()
		in = f
	}
	return script.Parse(in)
}

// applyScript runs ops against a new map built from c.
func applyScript(c conf.MapConf, ops []script.Op, out io.Writer, logger log.ILogger, verify bool) (*orderedmap.Map[string, string], error) {
	m, err := newMap(c)
	if err != nil {
		return nil, err
	}
	logger.Debugw("running script",
		"ops", len(ops),
		"capacity", c.Capacity,
		"hasher", c.Hasher,
		"verify", verify,
	)
	r := &script.Runner{Map: m, Out: out, Log: logger, Verify: verify}
	return m, r.Run(ops)
}

func runScript(cmd *cobra.Command, opts *options, path string, verify bool) error {
	cfg, err := opts.load()
	if err != nil {
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

	m, err := applyScript(cfg.Map, ops, cmd.OutOrStdout(), logger, verify)
	if err != nil {
		return err
	}
	if verify {
		logger.Infow("script verified", "script", path, "ops", len(ops), "len", m.Len())
	}
	return nil
}
