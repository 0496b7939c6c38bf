// List command for the bookshelf CLI.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IrinaKra/Bookshelf/pkg/library"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List inventory books, pile first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := attachStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		books, err := store.ListBooks()
		if err != nil {
			return sysErrorf("list books: %w", err)
		}

		if flagJSON {
			rows := make([]library.Record, 0, len(books))
			for _, b := range books {
				rows = append(rows, library.Record{
					BookID:   b.ID,
					Title:    b.Title,
					Author:   b.Author,
					Category: b.Category,
					ISBN:     b.ISBN,
					Shelf:    b.Shelf,
				})
			}
			out, err := json.MarshalIndent(rows, "", "  ")
			if err != nil {
				return sysErrorf("marshal JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		for _, b := range books {
			place := "pile"
			if b.Shelf != "" {
				place = b.Shelf
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s by %s [%s]\n", place, b.Title, b.Author, b.Category)
		}
		return nil
	},
}
