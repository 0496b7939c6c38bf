// Stats command for the bookshelf CLI.
package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/IrinaKra/Bookshelf/pkg/library"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Book counts per shelf and category",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		counts := countByShelfCategory(catalog.Records())

		if flagJSON {
			out, err := json.MarshalIndent(counts, "", "  ")
			if err != nil {
				return sysErrorf("marshal JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		// Room order for shelves, name order for categories within a shelf.
		for _, s := range room.Shelves {
			byCat, ok := counts[s.Name]
			if !ok {
				continue
			}
			cats := make([]string, 0, len(byCat))
			for cat := range byCat {
				cats = append(cats, cat)
			}
			sort.Strings(cats)
			fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", s.Name)
			for _, cat := range cats {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-20s %d\n", cat, byCat[cat])
			}
		}
		return nil
	},
}

// countByShelfCategory pivots records into shelf -> category -> count.
func countByShelfCategory(rows []library.Record) map[string]map[string]int {
	counts := make(map[string]map[string]int)
	for _, r := range rows {
		if counts[r.Shelf] == nil {
			counts[r.Shelf] = make(map[string]int)
		}
		counts[r.Shelf][r.Category]++
	}
	return counts
}
