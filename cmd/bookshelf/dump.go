// Dump command for the bookshelf CLI.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IrinaKra/Bookshelf/pkg/library"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the room contents",
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

		if flagJSON {
			out, err := json.MarshalIndent(catalog.Records(), "", "  ")
			if err != nil {
				return sysErrorf("marshal JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		fmt.Fprint(cmd.OutOrStdout(), catalog.Dump())
		return nil
	},
}
