// Organize command for the bookshelf CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IrinaKra/Bookshelf/pkg/library"
)

var organizeSort bool

var organizeCmd = &cobra.Command{
	Use:   "organize",
	Short: "Place the pile onto shelves by category",
	Long: `Organize matches each pile book's category against the configured
shelf names (exact match) and appends it to the first matching shelf. Books
with no matching shelf stay in the pile; they are reported, not errors.`,
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

		pile, err := store.Pile()
		if err != nil {
			return sysErrorf("load pile: %w", err)
		}

		shelfNames := make(map[string]bool, len(room.Shelves))
		for _, s := range room.Shelves {
			shelfNames[s.Name] = true
		}
		for _, b := range pile {
			if !shelfNames[b.Category] {
				logger.Warn("no shelf for category, book stays in the pile",
					"title", b.Title, "category", b.Category)
			}
		}

		catalog.OrganizeBooksByCategory(pile)
		if organizeSort {
			catalog.SortBooksOnAllShelves()
		}
		if err := catalog.VerifyCategoryPlacement(); err != nil {
			logger.Warn("category placement check failed", "err", err)
		}
		if err := store.RecordPlacements(room); err != nil {
			return sysErrorf("record placements: %w", err)
		}

		fmt.Fprint(cmd.OutOrStdout(), catalog.Dump())
		return nil
	},
}

func init() {
	organizeCmd.Flags().BoolVar(&organizeSort, "sort", false, "sort every shelf by title after organizing")
}
