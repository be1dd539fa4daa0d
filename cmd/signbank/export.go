package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nao1215/signbank/internal/database"
)

// NewExportCmd creates the export command.
func NewExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <id> <file>",
		Short: "Write a stored sign image to a file",
		Long: `Export writes the image bytes of one stored sign to a file.
Sign ids are shown by 'signbank lookup'.

Examples:
  signbank export 42 anna_minulle.jpg`,
		Args: cobra.ExactArgs(2),
		RunE: runExportCmd,
	}
}

// runExportCmd executes the export command.
func runExportCmd(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid sign id %q: %w", args[0], err)
	}
	outputPath := args[1]

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cmd, cfg.Verbose)

	ctx := cmd.Context()
	db, err := database.Open(ctx, cfg.DSN, database.Options{})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	sign, err := db.GetSign(ctx, id)
	if err != nil {
		return err
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, sign.Data, 0600); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}

	logger.Debug("sign exported", "id", id, "word", sign.Word, "bytes", len(sign.Data))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %q by %s (%d bytes) to %s\n", sign.Word, sign.Author, len(sign.Data), outputPath)
	return nil
}
