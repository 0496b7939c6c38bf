// Add command for the bookshelf CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IrinaKra/Bookshelf/pkg/library"
)

var addFlags struct {
	id       string
	title    string
	author   string
	category string
	isbn     string
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a book to the pile",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := attachStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		saved, err := store.SaveBook(library.Book{
			ID:       addFlags.id,
			Title:    addFlags.title,
			Author:   addFlags.author,
			Category: addFlags.category,
			ISBN:     addFlags.isbn,
		})
		if err != nil {
			return sysErrorf("save book: %w", err)
		}

		logger.Debug("book added", "id", saved.ID, "category", saved.Category)
		fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s)\n", saved.Title, saved.ID)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addFlags.id, "id", "", "book identifier (generated when omitted)")
	addCmd.Flags().StringVar(&addFlags.title, "title", "", "book title")
	addCmd.Flags().StringVar(&addFlags.author, "author", "", "book author")
	addCmd.Flags().StringVar(&addFlags.category, "category", "", "book category")
	addCmd.Flags().StringVar(&addFlags.isbn, "isbn", "", "book ISBN")
	addCmd.MarkFlagRequired("title")
	addCmd.MarkFlagRequired("category")
}
