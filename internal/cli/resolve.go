package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppiankov/sotd/internal/model"
	"github.com/ppiankov/sotd/internal/pattern"
	"github.com/ppiankov/sotd/internal/pipeline"
)

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Map a free-text product name to its canonical name",
	Long: `Resolve looks a product name up in the pattern catalog and prints the
canonical name. The longest matching pattern wins.

Example:
  sotd resolve razor "RazoRock Game Changer .84P"
  sotd resolve brush "Semouge 1305"`,
}

var resolveRazorCmd = &cobra.Command{
	Use:   "razor <name>",
	Short: "Resolve a razor name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runResolve(cmd.OutOrStdout(), pipeline.NewClassifier().Razors(), strings.Join(args, " "))
	},
}

var resolveBrushCmd = &cobra.Command{
	Use:   "brush <name>",
	Short: "Resolve a brush name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runResolve(cmd.OutOrStdout(), pipeline.NewClassifier().Brushes(), strings.Join(args, " "))
	},
}

func runResolve(out io.Writer, resolver *pattern.Resolver, name string) error {
	canonical, ok := resolver.Resolve(name)
	if !ok {
		return fmt.Errorf("no canonical %s for %q", resolver.Name(), name)
	}
	fmt.Fprintln(out, canonical)
	return nil
}

// plateCmd represents the plate command
var plateCmd = &cobra.Command{
	Use:   "plate [comment]",
	Short: "Extract the Karve CB plate and orientation from a comment",
	Long: `Plate finds the razor in a SOTD comment and, when it is a Karve CB,
prints the plate letter and orientation, e.g. "D SB" or "C OC".
The comment is read from stdin when omitted or "-".

Example:
  sotd plate "Razor: Karve CB - C-plate OC"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		comment, err := commentText(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}

		plate, ok := pipeline.NewClassifier().Plates().Extract(comment)
		if !ok {
			return fmt.Errorf("no Karve CB plate found")
		}
		fmt.Fprintln(cmd.OutOrStdout(), plate)
		return nil
	},
}

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify [comment]",
	Short: "Show everything recognized in one comment",
	Long: `Classify extracts the razor and brush from a SOTD comment, resolves
them, and prints the result as JSON. The comment is read from stdin when
omitted or "-".`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		comment, err := commentText(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}

		shave := pipeline.NewClassifier().Classify(model.Comment{Body: comment})
		data, err := json.MarshalIndent(shave, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func commentText(stdin io.Reader, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read comment: %w", err)
	}
	return string(data), nil
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.AddCommand(resolveRazorCmd)
	resolveCmd.AddCommand(resolveBrushCmd)
	rootCmd.AddCommand(plateCmd)
	rootCmd.AddCommand(classifyCmd)
}
