// Quote commands for the cartwright CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fairwayworks/cartwright/pkg/pricing"
	"github.com/fairwayworks/cartwright/pkg/rules"
	"github.com/fairwayworks/cartwright/pkg/types"
)

var (
	quoteName   string
	quoteEmail  string
	quoteStatus string
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Submit and manage quotes",
}

var quoteSubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit the active build as a quote",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "quote submit:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		build, err := loadBuild(store)
		if err != nil {
			fmt.Fprintln(os.Stderr, "quote submit:", err)
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
			fmt.Fprintln(os.Stderr, "quote submit:", err)
			os.Exit(exitSysError)
		}
		breakdown, err := pricing.Price(build, cat, rates)
		if err != nil {
			fmt.Fprintln(os.Stderr, "quote submit:", err)
			os.Exit(exitSysError)
		}

		quoteID, err := store.SaveQuote(types.Quote{
			Configuration: build,
			CustomerName:  quoteName,
			CustomerEmail: quoteEmail,
			Total:         breakdown.Total,
			Status:        types.QuoteStatusSubmitted,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "quote submit:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			quote, err := store.GetQuote(quoteID)
			if err != nil {
				fmt.Fprintln(os.Stderr, "quote submit:", err)
				os.Exit(exitSysError)
			}
			return printJSON(map[string]any{"quote": quote, "breakdown": breakdown})
		}
		fmt.Printf("Submitted quote %s. Total: %.2f %s\n", quoteID, breakdown.Total, currency())
		return nil
	},
}

var quoteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List quotes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "quote list:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		quotes, err := store.ListQuotes(quoteStatus)
		if err != nil {
			if errors.Is(err, types.ErrInvalidStatus) {
				fmt.Fprintf(os.Stderr, "quote list: unknown status %q\n", quoteStatus)
				os.Exit(exitUserError)
			}
			fmt.Fprintln(os.Stderr, "quote list:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			return printJSON(map[string]any{"quotes": quotes})
		}
		if len(quotes) == 0 {
			fmt.Println("No quotes")
			return nil
		}
		for _, q := range quotes {
			fmt.Printf("  %s  %-9s %12.2f %s  %s\n",
				q.QuoteID, q.Status, q.Total, currency(), q.CustomerName)
		}
		return nil
	},
}

var quoteGetCmd = &cobra.Command{
	Use:   "get <quote-id>",
	Short: "Show one quote",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "quote get:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		quote, err := store.GetQuote(args[0])
		if err != nil {
			if errors.Is(err, types.ErrNotFound) || errors.Is(err, types.ErrInvalidID) {
				fmt.Fprintf(os.Stderr, "quote get: quote %q not found\n", args[0])
				os.Exit(exitUserError)
			}
			fmt.Fprintln(os.Stderr, "quote get:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			return printJSON(quote)
		}
		fmt.Printf("Quote %s\n", quote.QuoteID)
		fmt.Printf("Status:   %s\n", quote.Status)
		fmt.Printf("Customer: %s <%s>\n", quote.CustomerName, quote.CustomerEmail)
		fmt.Printf("Total:    %.2f %s\n", quote.Total, currency())
		fmt.Printf("Platform: %s\n", quote.Configuration.PlatformID)
		for _, id := range quote.Configuration.SelectedOptions {
			fmt.Printf("  %s\n", id)
		}
		return nil
	},
}

var quoteDeleteCmd = &cobra.Command{
	Use:   "delete <quote-id>",
	Short: "Delete a quote",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "quote delete:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		if err := store.DeleteQuote(args[0]); err != nil {
			if errors.Is(err, types.ErrNotFound) || errors.Is(err, types.ErrInvalidID) {
				fmt.Fprintf(os.Stderr, "quote delete: quote %q not found\n", args[0])
				os.Exit(exitUserError)
			}
			fmt.Fprintln(os.Stderr, "quote delete:", err)
			os.Exit(exitSysError)
		}
		fmt.Println("Deleted quote", args[0])
		return nil
	},
}

func init() {
	quoteSubmitCmd.Flags().StringVar(&quoteName, "name", "", "customer name")
	quoteSubmitCmd.Flags().StringVar(&quoteEmail, "email", "", "customer email")
	quoteListCmd.Flags().StringVar(&quoteStatus, "status", "", "filter by status (draft, submitted, accepted, rejected)")

	quoteCmd.AddCommand(quoteSubmitCmd)
	quoteCmd.AddCommand(quoteListCmd)
	quoteCmd.AddCommand(quoteGetCmd)
	quoteCmd.AddCommand(quoteDeleteCmd)
}
