package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var watchInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Continuously refresh the aggregate statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		interval := watchInterval
		if interval <= 0 {
			interval = cfg.WatchInterval
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// The limiter paces polling; refreshes can never outrun the
		// configured interval even if a fetch returns instantly.
		limiter := rate.NewLimiter(rate.Every(interval), 1)
		for {
			if err := limiter.Wait(ctx); err != nil {
				return nil // interrupted
			}

			stats, err := client.Stats(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("--- %s ---\n", time.Now().Format(time.TimeOnly))
			if err := printStats(stats); err != nil {
				return err
			}
		}
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 0,
		"refresh interval (overrides TRADESYNC_WATCH_INTERVAL)")
	rootCmd.AddCommand(watchCmd)
}
