package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"opentdb-quiz/internal/domain"
)

// NewCategoriesCmd lists the labels accepted by play and serve.
func NewCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories, difficulties and question types",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printOptions(cmd.OutOrStdout())
		},
	}
}

func printOptions(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCATEGORY")
	for _, c := range domain.Categories() {
		fmt.Fprintf(w, "%d\t%s\n", c.Wire(), c.Label())
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "VALUE\tDIFFICULTY")
	for _, d := range domain.Difficulties() {
		fmt.Fprintf(w, "%s\t%s\n", wireOrAny(d.Wire()), d.Label())
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "VALUE\tTYPE")
	for _, t := range domain.Types() {
		fmt.Fprintf(w, "%s\t%s\n", wireOrAny(t.Wire()), t.Label())
	}
	return w.Flush()
}

func wireOrAny(wire string) string {
	if wire == "" {
		return "any"
	}
	return wire
}
