// cmd/sources.go
package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/julienpequegnot/feedscout/internal/catalog"
	"github.com/julienpequegnot/feedscout/internal/config"
	"github.com/julienpequegnot/feedscout/internal/database"
	"github.com/spf13/cobra"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List the feed catalog",
	Long:  `Display every feed recorded by previous discovery runs.`,
	RunE:  runSources,
}

var sourcesSite string

func init() {
	rootCmd.AddCommand(sourcesCmd)
	sourcesCmd.Flags().StringVar(&sourcesSite, "site", "", "Only show entries for this site URL")
}

func runSources(cmd *cobra.Command, args []string) error {
	db, err := database.New(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	repo := catalog.NewRepository(db)

	var entries []catalog.Entry
	if sourcesSite != "" {
		entries, err = repo.ListBySite(sourcesSite)
	} else {
		entries, err = repo.List()
	}
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("Catalog is empty. Run 'feedscout run --save' or 'feedscout discover --save' first.")
		return nil
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	siteStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	typeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	urlStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	fmt.Println(headerStyle.Render(fmt.Sprintf(" %-30s  %-5s  %s", "SITE", "TYPE", "FEED URL")))
	fmt.Println(strings.Repeat("─", 100))

	for _, e := range entries {
		site := e.SiteURL
		if len(site) > 30 {
			site = site[:27] + "..."
		}

		if e.FeedURL == "" {
			fmt.Printf(" %s  %-5s  %s\n",
				siteStyle.Render(fmt.Sprintf("%-30s", site)),
				"-",
				errStyle.Render(e.Error),
			)
			continue
		}

		fmt.Printf(" %s  %s  %s\n",
			siteStyle.Render(fmt.Sprintf("%-30s", site)),
			typeStyle.Render(fmt.Sprintf("%-5s", e.FeedType)),
			urlStyle.Render(e.FeedURL),
		)
	}

	return nil
}
