package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/signbank/internal/database"
	signlog "github.com/nao1215/signbank/internal/log"
)

// NewSchemaCmd creates the schema command.
func NewSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print or apply the database schema",
		Long: `Schema prints the SQL that creates the Author, Topic, Word and Sign tables.

With --apply the statements are executed against the database instead.
A local SQLite file is created if it does not exist. Applying the schema
twice is harmless.

Examples:
  # Review the schema
  signbank schema

  # Create the default database
  signbank schema --apply

  # Create the tables in a remote libsql database
  signbank schema --apply --db "libsql://signs.example.turso.io?authToken=..."`,
		Args: cobra.NoArgs,
		RunE: runSchemaCmd,
	}

	cmd.Flags().Bool("apply", false, "Create the tables in the database")

	return cmd
}

// runSchemaCmd executes the schema command.
func runSchemaCmd(cmd *cobra.Command, _ []string) error {
	apply, err := cmd.Flags().GetBool("apply")
	if err != nil {
		return err
	}
	if !apply {
		fmt.Fprint(cmd.OutOrStdout(), database.SchemaSQL)
		return nil
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cmd, cfg.Verbose)

	db, err := database.Open(cmd.Context(), cfg.DSN, database.Options{CreateSchema: true})
	if err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	defer db.Close()

	logger.Debug("schema applied", "driver", db.Driver())
	fmt.Fprintf(cmd.OutOrStdout(), "Schema applied to %s\n", signlog.RedactString(cfg.DSN))
	return nil
}
