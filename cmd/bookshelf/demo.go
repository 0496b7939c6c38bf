// Demo command for the bookshelf CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IrinaKra/Bookshelf/pkg/library"
)

// demoPile is a sample pile of loose books.
var demoPile = []library.Book{
	{ID: "b001", Title: "A Tale of Two Cities", Author: "Charles Dickens", Category: "Classic"},
	{ID: "b002", Title: "Brave New World", Author: "Aldous Huxley", Category: "Dystopian"},
	{ID: "b003", Title: "The Pragmatic Programmer", Author: "Andrew Hunt", Category: "Programming"},
	{ID: "b004", Title: "Clean Code", Author: "Robert C. Martin", Category: "Programming"},
	{ID: "b005", Title: "Do Androids Dream of Electric Sheep?", Author: "Philip K. Dick", Category: "Sci-Fi"},
	{ID: "b006", Title: "I, Robot", Author: "Isaac Asimov", Category: "Sci-Fi"},
	{ID: "b007", Title: "The Name of the Rose", Author: "Umberto Eco", Category: "Mystery"},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the sample walkthrough (no inventory touched)",
	Long: `Demo builds Bob's room with one shelf per sample category, organizes
the sample pile onto it, sorts every shelf by title, checks the placement,
and prints the dump. Nothing is read from or written to the inventory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		room := library.NewRoom("Bob",
			library.NewShelf("Classic"),
			library.NewShelf("Dystopian"),
			library.NewShelf("Programming"),
			library.NewShelf("Sci-Fi"),
			library.NewShelf("Mystery"),
		)
		catalog, err := library.NewCatalog(room)
		if err != nil {
			return err
		}

		catalog.OrganizeBooksByCategory(demoPile)
		catalog.SortBooksOnAllShelves()
		if err := catalog.VerifyCategoryPlacement(); err != nil {
			return fmt.Errorf("placement check: %w", err)
		}

		fmt.Fprint(cmd.OutOrStdout(), catalog.Dump())
		return nil
	},
}
