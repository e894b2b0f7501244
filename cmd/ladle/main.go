package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kterry/ladle/internal/app"
)

var version = "0.1.0"

func main() {
	os.Exit(run())
}

func run() int {
	var opts app.Options

	root := &cobra.Command{
		Use:     "ladle",
		Short:   "Terminal client for a personal recipe service",
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			return app.Run(ctx, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().StringVar(&opts.ConfigPath, "config", "", "override config file path (optional)")
	root.Flags().StringVar(&opts.ServerURL, "server", "", "recipe service URL (overrides config)")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ladle: %v\n", err)
		return 1
	}
	return 0
}
