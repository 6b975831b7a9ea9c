package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/arloliu/instrumath/catalog"
)

func newDescribeCmd(reg *catalog.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <formula>",
		Short: "Show the parameters of a formula",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := reg.Lookup(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s, ID %016x)\n", f.Name, f.Category, f.ID)
			fmt.Fprintf(out, "%s\n\n", f.Summary)

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PARAM\tUNIT\tDEFAULT\tDESCRIPTION")
			for _, p := range f.Params {
				def := p.Default
				switch {
				case def != "":
				case p.Required:
					def = "(required)"
				default:
					def = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Name, orDash(p.Unit), def, p.Summary)
			}

			return w.Flush()
		},
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
