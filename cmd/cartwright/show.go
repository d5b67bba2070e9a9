// Show command for the cartwright CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fairwayworks/cartwright/pkg/rules"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active build",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "show:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		build, err := loadBuild(store)
		if err != nil {
			fmt.Fprintln(os.Stderr, "show:", err)
			os.Exit(exitUserError)
		}

		if flagJSON {
			return printJSON(build)
		}

		cat := mustCatalog(store)
		platformName := build.PlatformID
		if p, ok := cat.PlatformByID(build.PlatformID); ok {
			platformName = p.Name
		}

		fmt.Printf("Build %s\n", build.ConfigID)
		fmt.Printf("Platform: %s\n", platformName)
		fmt.Println("Options:")
		for _, id := range build.SelectedOptions {
			fmt.Printf("  %s\n", cat.OptionName(id))
		}
		fmt.Println("Materials:")
		for _, sel := range build.MaterialSelections {
			name := sel.MaterialID
			if m, ok := cat.MaterialByID(sel.MaterialID); ok {
				name = m.Name
			}
			fmt.Printf("  %-8s %s\n", sel.Zone, name)
		}
		if build.BuildNotes != "" {
			fmt.Println("Notes:", build.BuildNotes)
		}

		result := rules.ValidateConfiguration(build, cat)
		if result.Valid {
			fmt.Println("Status: valid")
		} else {
			fmt.Println("Status: invalid")
			printViolations(result.Errors)
		}
		return nil
	},
}
