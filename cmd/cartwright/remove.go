// Remove command for the cartwright CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fairwayworks/cartwright/pkg/pricing"
	"github.com/fairwayworks/cartwright/pkg/rules"
)

var removeForce bool

var removeCmd = &cobra.Command{
	Use:   "remove <option-id>",
	Short: "Remove an option from the active build",
	Long: `Remove an option from the active build. Removal is blocked when other
selected options depend on it; --force removes it anyway and leaves the build
invalid until the dependents are resolved.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		optionID := args[0]

		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "remove:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		build, err := loadBuild(store)
		if err != nil {
			fmt.Fprintln(os.Stderr, "remove:", err)
			os.Exit(exitUserError)
		}

		if !build.HasOption(optionID) {
			fmt.Fprintf(os.Stderr, "remove: option %q is not selected\n", optionID)
			os.Exit(exitUserError)
		}

		cat := mustCatalog(store)
		if !removeForce {
			result := rules.ValidateRemoval(build, optionID, cat)
			if !result.Valid {
				fmt.Fprintf(os.Stderr, "Cannot remove %s:\n", cat.OptionName(optionID))
				printViolations(result.Errors)
				fmt.Fprintln(os.Stderr, "Use --force to remove anyway.")
				os.Exit(exitUserError)
			}
		}

		build = build.RemoveOption(optionID)
		if err := saveBuild(store, build); err != nil {
			fmt.Fprintln(os.Stderr, "remove:", err)
			os.Exit(exitSysError)
		}

		rates, err := loadRates()
		if err != nil {
			fmt.Fprintln(os.Stderr, "remove:", err)
			os.Exit(exitSysError)
		}
		breakdown, err := pricing.Price(build, cat, rates)
		if err != nil {
			fmt.Fprintln(os.Stderr, "remove: price:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			return printJSON(map[string]any{"build": build, "breakdown": breakdown})
		}
		fmt.Printf("Removed %s. Total: %.2f %s\n", cat.OptionName(optionID), breakdown.Total, currency())
		return nil
	},
}

func init() {
	removeCmd.Flags().BoolVar(&removeForce, "force", false, "remove even if selected options depend on it")
}
