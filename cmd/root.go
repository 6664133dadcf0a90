package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/julienpequegnot/feedscout/internal/config"
	"github.com/julienpequegnot/feedscout/internal/feed"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "feedscout",
	Short: "Discover RSS/Atom feeds for websites",
	Long: `Feedscout finds the syndication feeds behind a website: it probes
well-known feed paths first, then falls back to scanning the homepage
HTML for feed links.

Use 'run' to enrich a CSV of blog URLs in bulk, or 'discover' for one site.`,
}

func init() {
	rootCmd.Version = "0.1.0"
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func finderOptions(cfg *config.Config) feed.Options {
	return feed.Options{
		Timeout:           time.Duration(cfg.Discovery.TimeoutSeconds) * time.Second,
		MaxRedirects:      cfg.Discovery.MaxRedirects,
		MaxRetries:        cfg.Discovery.MaxRetries,
		RequestsPerSecond: cfg.Discovery.RequestsPerSecond,
		BaseRetryDelay:    time.Duration(cfg.Discovery.BaseRetryDelaySeconds * float64(time.Second)),
		UserAgent:         cfg.Discovery.UserAgent,
	}
}
