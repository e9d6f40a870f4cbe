package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newCacheCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear cached answers",
	}

	cmd.AddCommand(
		newCacheClearCmd(app),
		newCacheStatsCmd(app),
	)

	return cmd
}

func newCacheClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached answer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			removed, err := app.cache.Clear(cmd.Context())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Cache cleared: %d %s removed\n", removed, plural(removed, "entry", "entries"))
			return err
		},
	}
}

func newCacheStatsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show how many cached answers are still valid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := app.cache.Stats(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Directory: %s\n", app.cache.Dir())
			fmt.Fprintf(out, "TTL:       %s\n", app.cache.TTL())
			fmt.Fprintf(out, "Entries:   %d\n", stats.Total)
			fmt.Fprintf(out, "Valid:     %d\n", stats.Valid)
			fmt.Fprintf(out, "Expired:   %d\n", stats.Expired)
			fmt.Fprintf(out, "Size:      %s\n", humanize.Bytes(uint64(stats.SizeBytes)))
			if !app.cfg.Cache.Enabled {
				fmt.Fprintln(out, "Caching is disabled in the configuration.")
			}
			return nil
		},
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}

	return many
}
