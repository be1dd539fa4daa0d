package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for signbank.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signbank",
		Short: "Scrape and store the Papunet sign image bank",
		Long: `signbank collects sign-language images from the Papunet image bank
(http://papunet.net/materiaalia/kuvapankki/) together with their word, author
and topic, and stores them in a relational database for later lookup.

The crawl result is cached on disk; later runs reuse the cache instead of
crawling the site again.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .signbank in current or home directory)")
	cmd.PersistentFlags().String("db", "",
		"Database DSN: a SQLite file path, or a libsql:// / https:// URL (default: XDG data directory)")

	cmd.AddCommand(NewScrapeCmd())
	cmd.AddCommand(NewLookupCmd())
	cmd.AddCommand(NewExportCmd())
	cmd.AddCommand(NewSchemaCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
