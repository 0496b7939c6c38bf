// Init command for the bookshelf CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config directory and an empty inventory",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := attachStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		fmt.Fprintf(cmd.OutOrStdout(), "bookshelf initialized (config: %s)\n", resolveConfigDir())
		return nil
	},
}
