package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/julienpequegnot/feedscout/internal/catalog"
	"github.com/julienpequegnot/feedscout/internal/config"
	"github.com/julienpequegnot/feedscout/internal/database"
	"github.com/julienpequegnot/feedscout/internal/feed"
	"github.com/spf13/cobra"
)

var discoverCmd = &cobra.Command{
	Use:   "discover <url>",
	Short: "Discover feeds for a single site",
	Long:  `Probes a site for RSS/Atom feeds and prints what it finds.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDiscover,
}

var discoverSave bool

func init() {
	rootCmd.AddCommand(discoverCmd)
	discoverCmd.Flags().BoolVar(&discoverSave, "save", false, "Record the result in the local catalog")
}

func runDiscover(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	finder := feed.NewFinder(finderOptions(cfg))

	fmt.Printf("Discovering feeds for %s...\n\n", feed.CleanURL(args[0]))
	result := finder.Discover(cmd.Context(), args[0])

	if discoverSave {
		db, err := database.New(config.DBPath())
		if err != nil {
			return err
		}
		defer db.Close()

		if err := catalog.NewRepository(db).Save(result); err != nil {
			return err
		}
	}

	if result.Status == feed.StatusError {
		fmt.Printf("Discovery failed: %s\n", result.Err)
		return nil
	}
	if len(result.Feeds) == 0 {
		fmt.Printf("No feeds found for %s\n", result.SiteURL)
		return nil
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	typeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	urlStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	fmt.Println(headerStyle.Render(fmt.Sprintf(" %-5s  %-30s  %s", "TYPE", "TITLE", "URL")))
	fmt.Println(strings.Repeat("─", 100))

	for _, c := range result.Feeds {
		title := c.Title
		if len(title) > 30 {
			title = title[:27] + "..."
		}

		fmt.Printf(" %s  %s  %s\n",
			typeStyle.Render(fmt.Sprintf("%-5s", c.Type)),
			titleStyle.Render(fmt.Sprintf("%-30s", title)),
			urlStyle.Render(c.URL),
		)
	}

	return nil
}
