package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sant0-9/promptsig/internal/logging"
	"github.com/sant0-9/promptsig/internal/signature"
	"github.com/spf13/cobra"
)

const pingTimeout = 5 * time.Second

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the signature backend is reachable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), pingTimeout)
		defer cancel()

		client := signature.NewClient(cfg.APIURL)
		start := time.Now()
		if err := client.Ping(ctx); err != nil {
			logging.S().Warnw("backend ping failed", "api_url", client.BaseURL(), "error", err)
			return err
		}

		took := time.Since(start)
		logging.S().Infow("backend reachable", "api_url", client.BaseURL(), "duration", took)
		fmt.Fprintf(cmd.OutOrStdout(), "backend at %s is reachable (%s)\n", client.BaseURL(), took.Round(time.Millisecond))
		return nil
	},
}
