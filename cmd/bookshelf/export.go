// Export command for the bookshelf CLI.
package main

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IrinaKra/Bookshelf/internal/sqlite"
	"github.com/IrinaKra/Bookshelf/pkg/library"
)

var exportFlags struct {
	format string
	out    string
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export shelved books as CSV or JSONL",
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportFlags.format != "csv" && exportFlags.format != "jsonl" {
			return fmt.Errorf("unknown export format %q (want csv or jsonl)", exportFlags.format)
		}

		store, v, err := attachStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		room, err := buildRoom(v, store)
		if err != nil {
			return err
		}
		catalog, err := library.NewCatalog(room)
		if err != nil {
			return err
		}
		rows := catalog.Records()

		switch exportFlags.format {
		case "jsonl":
			if err := sqlite.WriteRecordsJSONL(exportFlags.out, rows); err != nil {
				return sysErrorf("write JSONL: %w", err)
			}
		case "csv":
			if err := writeRecordsCSV(exportFlags.out, rows); err != nil {
				return sysErrorf("write CSV: %w", err)
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "exported %d records to %s\n", len(rows), exportFlags.out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFlags.format, "format", "csv", "export format: csv or jsonl")
	exportCmd.Flags().StringVar(&exportFlags.out, "out", "", "output file path")
	exportCmd.MarkFlagRequired("out")
}

// writeRecordsCSV writes records with a header row, in record order.
func writeRecordsCSV(path string, rows []library.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"book_id", "title", "author", "category", "isbn", "shelf"}); err != nil {
		f.Close()
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range rows {
		if err := w.Write([]string{r.BookID, r.Title, r.Author, r.Category, r.ISBN, r.Shelf}); err != nil {
			f.Close()
			return fmt.Errorf("writing record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flushing records: %w", err)
	}
	return f.Close()
}
