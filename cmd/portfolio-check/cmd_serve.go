package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/xengvang1984/xengvang.com-e2e/pkg/config"
	"github.com/xengvang1984/xengvang.com-e2e/pkg/environment"
	"github.com/xengvang1984/xengvang.com-e2e/pkg/site"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	addr := ":3000"
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local fixture site",
		Long:  "Serve a mirror of xengvang.com for the local environment until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := root.load(config.WithEnvironment(string(environment.Local))); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg := site.DefaultConfig()
			cfg.Addr = addr
			cfg.Logger = root.logger
			srv, err := site.NewServer(cfg)
			if err != nil {
				return err
			}
			listening, err := srv.Start()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓ Fixture site listening on %s", listening))

			<-ctx.Done()

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().StringVarP(&addr, "addr", "a", addr, "Listen address")
	return cmd
}
