// Notes command for the cartwright CLI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var notesCmd = &cobra.Command{
	Use:   "notes <text>...",
	Short: "Set the build notes on the active build",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "notes:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		build, err := loadBuild(store)
		if err != nil {
			fmt.Fprintln(os.Stderr, "notes:", err)
			os.Exit(exitUserError)
		}

		build = build.WithNotes(strings.Join(args, " "))
		if err := saveBuild(store, build); err != nil {
			fmt.Fprintln(os.Stderr, "notes:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			return printJSON(build)
		}
		fmt.Println("Notes updated")
		return nil
	},
}
