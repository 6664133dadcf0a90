package cmd

import (
	"fmt"

	"github.com/julienpequegnot/feedscout/internal/catalog"
	"github.com/julienpequegnot/feedscout/internal/config"
	"github.com/julienpequegnot/feedscout/internal/csvio"
	"github.com/julienpequegnot/feedscout/internal/database"
	"github.com/julienpequegnot/feedscout/internal/feed"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Discover feeds for every site in a CSV file",
	Long: `Reads site URLs from the input CSV (blog_url or url column), discovers
their feeds concurrently, and writes an enriched CSV report.`,
	RunE: runRun,
}

var (
	runInput       string
	runOutput      string
	runSave        bool
	runConcurrency int
)

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runInput, "input", "i", "", "Input CSV with a blog_url or url column")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "Output CSV for the discovery report")
	runCmd.Flags().BoolVar(&runSave, "save", false, "Also record results in the local catalog")
	runCmd.Flags().IntVarP(&runConcurrency, "concurrency", "c", 0, "Max concurrent sites (0 = unbounded)")
	runCmd.MarkFlagRequired("input")
	runCmd.MarkFlagRequired("output")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	sites, err := csvio.ReadSites(runInput)
	if err != nil {
		return err
	}
	if len(sites) == 0 {
		fmt.Printf("No site URLs found in %s\n", runInput)
		return nil
	}

	concurrency := cfg.Discovery.Concurrency
	if cmd.Flags().Changed("concurrency") {
		concurrency = runConcurrency
	}

	finder := feed.NewFinder(finderOptions(cfg))

	fmt.Printf("Discovering feeds for %d sites...\n", len(sites))
	results := finder.Run(cmd.Context(), sites, feed.BatchOptions{
		Concurrency: concurrency,
		Progress: func(done, total int) {
			fmt.Printf("\r%d/%d sites done", done, total)
		},
	})
	fmt.Println()

	if err := csvio.WriteReport(runOutput, results); err != nil {
		return err
	}

	if runSave {
		db, err := database.New(config.DBPath())
		if err != nil {
			return err
		}
		defer db.Close()

		repo := catalog.NewRepository(db)
		for _, r := range results {
			if err := repo.Save(r); err != nil {
				return err
			}
		}
	}

	found, errored := 0, 0
	for _, r := range results {
		found += len(r.Feeds)
		if r.Status == feed.StatusError {
			errored++
		}
	}

	fmt.Printf("Found %d feeds across %d sites (%d errors). Report written to %s\n",
		found, len(sites), errored, runOutput)
	return nil
}
