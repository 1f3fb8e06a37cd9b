package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ppiankov/sotd/internal/catalog"
	"github.com/ppiankov/sotd/internal/pattern"
)

var showDuplicates bool

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:       "catalog <razors|brushes>",
	Short:     "List the canonical names the catalog knows",
	Long:      `Catalog prints every canonical razor or brush name, one per line. With --duplicates it lists authored patterns that were shadowed by an earlier rule with the same text.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"razors", "brushes"},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		switch args[0] {
		case "razors":
			if showDuplicates {
				printDuplicates(out, catalog.RazorTable())
				return nil
			}
			printNames(out, catalog.RazorNames())
		case "brushes":
			if showDuplicates {
				printDuplicates(out, catalog.BrushApplyFirstTable())
				printDuplicates(out, catalog.BrushMakerTable())
				return nil
			}
			printNames(out, catalog.BrushNames())
		default:
			return fmt.Errorf("unknown catalog %q (want razors or brushes)", args[0])
		}
		return nil
	},
}

func printNames(out io.Writer, names []string) {
	for _, name := range names {
		fmt.Fprintln(out, name)
	}
}

func printDuplicates(out io.Writer, table *pattern.Table) {
	for _, rule := range table.Duplicates() {
		fmt.Fprintf(out, "%s\t%s\t%s\n", table.Name(), rule.Pattern, rule.Canonical)
	}
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().BoolVar(&showDuplicates, "duplicates", false, "list shadowed duplicate patterns instead of names")
}
