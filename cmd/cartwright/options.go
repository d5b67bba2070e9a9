// Options command for the cartwright CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fairwayworks/cartwright/pkg/rules"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List the options that can be added to the active build",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "options:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		build, err := loadBuild(store)
		if err != nil {
			fmt.Fprintln(os.Stderr, "options:", err)
			os.Exit(exitUserError)
		}

		cat := mustCatalog(store)
		available := rules.AvailableOptions(build, cat)

		if flagJSON {
			return printJSON(map[string]any{"options": available})
		}

		if len(available) == 0 {
			fmt.Println("No options can be added")
			return nil
		}
		for _, o := range available {
			fmt.Printf("  %-24s %-12s %-28s %10.2f + %.1fh\n",
				o.OptionID, o.Category, o.Name, o.PartPrice, o.LaborHours)
		}
		return nil
	},
}
