// Catalog commands for the cartwright CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fairwayworks/cartwright/pkg/rules"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and manage the option catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List platforms, options, and materials",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "catalog list:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		cat := mustCatalog(store)
		if flagJSON {
			return printJSON(map[string]any{
				"platforms": cat.Platforms(),
				"options":   cat.Options(),
				"materials": cat.Materials(),
			})
		}

		fmt.Println("Platforms:")
		for _, p := range cat.Platforms() {
			fmt.Printf("  %-24s %-28s %10.2f %s\n", p.PlatformID, p.Name, p.BasePrice, currency())
		}
		fmt.Println("Options:")
		for _, o := range cat.Options() {
			constraints := cat.ConstraintsFor(o.OptionID)
			suffix := ""
			if len(constraints.Requires) > 0 {
				suffix += fmt.Sprintf("  requires %v", constraints.Requires)
			}
			if len(constraints.Excludes) > 0 {
				suffix += fmt.Sprintf("  excludes %v", constraints.Excludes)
			}
			fmt.Printf("  %-24s %-12s %-28s %10.2f + %.1fh%s\n",
				o.OptionID, o.Category, o.Name, o.PartPrice, o.LaborHours, suffix)
		}
		fmt.Println("Materials:")
		for _, m := range cat.Materials() {
			fmt.Printf("  %-24s %-8s %-28s x%.2f\n", m.MaterialID, m.Zone, m.Name, m.PriceMultiplier)
		}
		return nil
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the catalog for authoring errors and validate the active build",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "catalog validate:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		cat := mustCatalog(store)
		issues := cat.Validate()

		if flagJSON {
			out := map[string]any{"valid": len(issues) == 0, "issues": issues}
			if build, err := loadBuild(store); err == nil {
				out["build"] = rules.ValidateConfiguration(build, cat)
			}
			if err := printJSON(out); err != nil {
				return err
			}
			if len(issues) > 0 {
				os.Exit(exitUserError)
			}
			return nil
		}

		if len(issues) == 0 {
			fmt.Println("Catalog is valid")
		} else {
			for _, issue := range issues {
				fmt.Fprintf(os.Stderr, "%s: %s\n", issue.Kind, issue.Message)
			}
		}

		// Validate the active build too, if one exists.
		if build, err := loadBuild(store); err == nil {
			result := rules.ValidateConfiguration(build, cat)
			if result.Valid {
				fmt.Println("Active build is valid")
			} else {
				fmt.Fprintln(os.Stderr, "Active build has violations:")
				printViolations(result.Errors)
			}
			if !result.Valid {
				os.Exit(exitUserError)
			}
		}

		if len(issues) > 0 {
			os.Exit(exitUserError)
		}
		return nil
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "export <dir>",
	Short: "Export the catalog as JSONL files",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "catalog export:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		if err := store.ExportCatalog(args[0]); err != nil {
			fmt.Fprintln(os.Stderr, "catalog export:", err)
			os.Exit(exitSysError)
		}
		fmt.Println("Catalog exported to", args[0])
		return nil
	},
}

var catalogImportCmd = &cobra.Command{
	Use:   "import <dir>",
	Short: "Replace the catalog from JSONL files",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "catalog import:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		if err := store.ImportCatalog(args[0]); err != nil {
			fmt.Fprintln(os.Stderr, "catalog import:", err)
			os.Exit(exitUserError)
		}

		cat := mustCatalog(store)
		if issues := cat.Validate(); len(issues) > 0 {
			fmt.Fprintln(os.Stderr, "Warning: imported catalog has authoring issues:")
			for _, issue := range issues {
				fmt.Fprintf(os.Stderr, " - %s: %s\n", issue.Kind, issue.Message)
			}
		}
		fmt.Println("Catalog imported from", args[0])
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogExportCmd)
	catalogCmd.AddCommand(catalogImportCmd)
}
