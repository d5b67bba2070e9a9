// New command for the cartwright CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fairwayworks/cartwright/pkg/types"
)

var newPlatform string

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new build on a platform",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if newPlatform == "" {
			fmt.Fprintln(os.Stderr, "new: --platform is required")
			os.Exit(exitUserError)
		}

		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "new:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		cat := mustCatalog(store)
		platform, ok := cat.PlatformByID(newPlatform)
		if !ok {
			fmt.Fprintf(os.Stderr, "new: unknown platform %q\n", newPlatform)
			os.Exit(exitUserError)
		}

		build := types.NewConfiguration(platform.PlatformID)
		if err := saveBuild(store, build); err != nil {
			fmt.Fprintln(os.Stderr, "new:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			return printJSON(build)
		}
		fmt.Printf("Started build %s on %s (base %.2f %s)\n",
			build.ConfigID, platform.Name, platform.BasePrice, currency())
		return nil
	},
}

func init() {
	newCmd.Flags().StringVar(&newPlatform, "platform", "", "platform ID to build on")
}
