package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xengvang1984/xengvang.com-e2e/pkg/config"
)

var version = "dev"

type rootOptions struct {
	configDir string
	verbose   bool
	quiet     bool
	logger    *zap.Logger
}

// load resolves the suite configuration for a command and builds its logger
// from the configured level. --verbose raises the level to debug, --quiet
// drops logging altogether.
func (o *rootOptions) load(overrides ...config.Override) (*config.Config, error) {
	if o.verbose {
		overrides = append(overrides, config.WithLogLevel("debug"))
	}
	cfg, err := config.Load(o.configDir, overrides...)
	if err != nil {
		return nil, err
	}
	if o.quiet {
		return cfg, nil
	}
	logger, err := cfg.Logger()
	if err != nil {
		return nil, err
	}
	o.logger = logger
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{configDir: ".", logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "portfolio-check",
		Short: "UI checks for xengvang.com",
		Long: `Verifies that every page of xengvang.com renders the expected content:
titles, URLs, text, images, contact links and footer notices.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&opts.configDir, "config-dir", opts.configDir, "Directory holding e2e.yaml and .env")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "Disable logging")

	root.AddCommand(newEnvCmd())
	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newCheckCmd(opts))
	return root
}
