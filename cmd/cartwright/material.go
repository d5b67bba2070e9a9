// Material command for the cartwright CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fairwayworks/cartwright/pkg/pricing"
	"github.com/fairwayworks/cartwright/pkg/types"
)

var materialCmd = &cobra.Command{
	Use:   "material <zone> <material-id>",
	Short: "Choose a material for a zone on the active build",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		zone, materialID := args[0], args[1]

		if !types.ValidZone(zone) {
			fmt.Fprintf(os.Stderr, "material: unknown zone %q\n", zone)
			os.Exit(exitUserError)
		}

		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "material:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		build, err := loadBuild(store)
		if err != nil {
			fmt.Fprintln(os.Stderr, "material:", err)
			os.Exit(exitUserError)
		}

		cat := mustCatalog(store)
		mat, ok := cat.MaterialByID(materialID)
		if !ok {
			fmt.Fprintf(os.Stderr, "material: unknown material %q\n", materialID)
			os.Exit(exitUserError)
		}
		if mat.Zone != zone {
			fmt.Fprintf(os.Stderr, "material: %s is a %s material, not %s\n", materialID, mat.Zone, zone)
			os.Exit(exitUserError)
		}

		build = build.SetMaterial(zone, materialID)
		if err := saveBuild(store, build); err != nil {
			fmt.Fprintln(os.Stderr, "material:", err)
			os.Exit(exitSysError)
		}

		rates, err := loadRates()
		if err != nil {
			fmt.Fprintln(os.Stderr, "material:", err)
			os.Exit(exitSysError)
		}
		breakdown, err := pricing.Price(build, cat, rates)
		if err != nil {
			fmt.Fprintln(os.Stderr, "material: price:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			return printJSON(map[string]any{"build": build, "breakdown": breakdown})
		}
		fmt.Printf("Set %s material to %s. Total: %.2f %s\n", zone, mat.Name, breakdown.Total, currency())
		return nil
	},
}
