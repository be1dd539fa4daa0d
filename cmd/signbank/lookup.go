package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nao1215/signbank/internal/database"
	"github.com/nao1215/signbank/internal/imagemeta"
)

// errNoSigns is returned by lookup when the word has no stored sign.
var errNoSigns = errors.New("no signs found")

// NewLookupCmd creates the lookup command.
func NewLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <word>",
		Short: "List the stored signs for a word",
		Long: `Lookup prints every stored sign whose word matches exactly.
The match is case-sensitive.

With --verbose the image bytes are inspected as well, and the content
type and EXIF artist of each image are shown.

Examples:
  signbank lookup "anna minulle"
  signbank lookup -v A`,
		Args: cobra.ExactArgs(1),
		RunE: runLookupCmd,
	}
}

// runLookupCmd executes the lookup command.
func runLookupCmd(cmd *cobra.Command, args []string) error {
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

	word := args[0]
	records, err := db.FindSigns(ctx, word)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("%w for %q", errNoSigns, word)
	}
	logger.Debug("signs found", "word", word, "count", len(records))

	if cfg.Verbose {
		return writeDetailedSigns(ctx, cmd.OutOrStdout(), db, records)
	}
	return writeSigns(cmd.OutOrStdout(), records)
}

// writeSigns prints one aligned row per sign.
func writeSigns(out io.Writer, records []database.SignRecord) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tWORD\tAUTHOR\tTOPIC\tBYTES")
	for _, r := range records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\n", r.ID, r.Word, r.Author, r.Topic, r.Size)
	}
	return tw.Flush()
}

// writeDetailedSigns loads each image and adds what imagemeta finds in it.
func writeDetailedSigns(ctx context.Context, out io.Writer, db *database.SignDB, records []database.SignRecord) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tWORD\tAUTHOR\tTOPIC\tBYTES\tTYPE\tEXIF ARTIST")
	for _, r := range records {
		sign, err := db.GetSign(ctx, r.ID)
		if err != nil {
			return err
		}
		meta := imagemeta.Inspect(sign.Data)
		artist := meta.Artist
		if artist == "" {
			artist = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\t%s\n",
			r.ID, r.Word, r.Author, r.Topic, r.Size, meta.ContentType, artist)
	}
	return tw.Flush()
}
