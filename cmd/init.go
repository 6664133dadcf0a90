package cmd

import (
	"fmt"
	"os"

	"github.com/julienpequegnot/feedscout/internal/config"
	"github.com/julienpequegnot/feedscout/internal/database"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize feedscout configuration and catalog",
	Long:  `Creates the ~/.feedscout directory with config.yaml and the SQLite catalog.`,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := config.Dir()

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	cfg := config.Default()
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Printf("Created config at %s/config.yaml\n", dir)

	db, err := database.New(config.DBPath())
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	db.Close()
	fmt.Printf("Created catalog at %s/feedscout.db\n", dir)

	fmt.Println("\nFeedscout initialized! Next steps:")
	fmt.Println("  feedscout discover <url>            Discover feeds for one site")
	fmt.Println("  feedscout run -i in.csv -o out.csv  Enrich a CSV of blog URLs")

	return nil
}
