package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/arloliu/instrumath/catalog"
)

func newListCmd(reg *catalog.Registry) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available formulas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tSUMMARY")
			for _, f := range reg.Formulas() {
				if category != "" && !equalFold(category, f.Category.String()) {
					continue
				}
				fmt.Fprintf(w, "%016x\t%s\t%s\t%s\n", f.ID, f.Name, f.Category, f.Summary)
			}

			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only list one category (signal, accuracy, sensor, regression)")

	return cmd
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), b)
}
