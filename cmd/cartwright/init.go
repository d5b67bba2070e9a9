// Init command for the cartwright CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the data directory and seed the demo catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		cat := mustCatalog(store)
		fmt.Printf("Initialized %s (%d platforms, %d options, %d materials)\n",
			store.DataDir(), len(cat.Platforms()), len(cat.Options()), len(cat.Materials()))
		return nil
	},
}
