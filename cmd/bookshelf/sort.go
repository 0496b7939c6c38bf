// Sort command for the bookshelf CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IrinaKra/Bookshelf/pkg/library"
)

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Sort every shelf by title",
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

		catalog.SortBooksOnAllShelves()
		if err := store.RecordPlacements(room); err != nil {
			return sysErrorf("record placements: %w", err)
		}

		fmt.Fprint(cmd.OutOrStdout(), catalog.Dump())
		return nil
	},
}
