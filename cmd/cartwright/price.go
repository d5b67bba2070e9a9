// Price command for the cartwright CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fairwayworks/cartwright/pkg/pricing"
	"github.com/fairwayworks/cartwright/pkg/rules"
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Print the price breakdown for the active build",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "price:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		build, err := loadBuild(store)
		if err != nil {
			fmt.Fprintln(os.Stderr, "price:", err)
			os.Exit(exitUserError)
		}

		cat := mustCatalog(store)
		result := rules.ValidateConfiguration(build, cat)
		if !result.Valid {
			fmt.Fprintln(os.Stderr, "Build is not valid:")
			printViolations(result.Errors)
			os.Exit(exitUserError)
		}

		rates, err := loadRates()
		if err != nil {
			fmt.Fprintln(os.Stderr, "price:", err)
			os.Exit(exitSysError)
		}
		breakdown, err := pricing.Price(build, cat, rates)
		if err != nil {
			fmt.Fprintln(os.Stderr, "price:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			return printJSON(breakdown)
		}
		printBreakdown(breakdown)
		return nil
	},
}

// printBreakdown writes a human-readable price table to stdout.
func printBreakdown(b pricing.Breakdown) {
	cur := currency()
	fmt.Printf("%-40s %12.2f %s\n", b.PlatformName+" (base)", b.BasePrice, cur)
	for _, line := range b.Options {
		fmt.Printf("%-40s %12.2f %s\n", line.Name, line.PartPrice, cur)
		if line.LaborCost > 0 {
			fmt.Printf("%-40s %12.2f %s\n", fmt.Sprintf("  labor %.1fh", line.LaborHours), line.LaborCost, cur)
		}
	}
	for _, line := range b.Materials {
		fmt.Printf("%-40s %12.2f %s\n",
			fmt.Sprintf("%s (%s x%.2f)", line.Name, line.Zone, line.Multiplier), line.Adjustment, cur)
	}
	fmt.Printf("%-40s %12.2f %s\n", "Parts subtotal", b.PartsSubtotal, cur)
	fmt.Printf("%-40s %12.2f %s\n", "Labor subtotal", b.LaborSubtotal, cur)
	fmt.Printf("%-40s %12.2f %s\n", "Material adjustment", b.MaterialAdjustment, cur)
	fmt.Printf("%-40s %12.2f %s\n", "Total", b.Total, cur)
}
