// Add command for the cartwright CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fairwayworks/cartwright/pkg/pricing"
	"github.com/fairwayworks/cartwright/pkg/rules"
)

var addCmd = &cobra.Command{
	Use:   "add <option-id>",
	Short: "Add an option to the active build",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		optionID := args[0]

		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "add:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		build, err := loadBuild(store)
		if err != nil {
			fmt.Fprintln(os.Stderr, "add:", err)
			os.Exit(exitUserError)
		}

		cat := mustCatalog(store)
		result := rules.ValidateAddition(build, optionID, cat)
		if !result.Valid {
			fmt.Fprintf(os.Stderr, "Cannot add %s:\n", cat.OptionName(optionID))
			printViolations(result.Errors)
			os.Exit(exitUserError)
		}

		build = build.AddOption(optionID)
		if err := saveBuild(store, build); err != nil {
			fmt.Fprintln(os.Stderr, "add:", err)
			os.Exit(exitSysError)
		}

		rates, err := loadRates()
		if err != nil {
			fmt.Fprintln(os.Stderr, "add:", err)
			os.Exit(exitSysError)
		}
		breakdown, err := pricing.Price(build, cat, rates)
		if err != nil {
			fmt.Fprintln(os.Stderr, "add: price:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			return printJSON(map[string]any{"build": build, "breakdown": breakdown})
		}
		fmt.Printf("Added %s. Total: %.2f %s\n", cat.OptionName(optionID), breakdown.Total, currency())
		return nil
	},
}
