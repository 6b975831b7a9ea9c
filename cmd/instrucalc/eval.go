package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arloliu/instrumath/catalog"
)

func newEvalCmd(reg *catalog.Registry) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "eval <formula> [param=value ...]",
		Short: "Evaluate a formula",
		Example: `  instrucalc eval bridge u0=10 k=2 strain=1e-3 type=quarter
  instrucalc eval linear-fit x=0.5,1.5,2.5 y=0.35,0.67,1.14`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseArgs(args[1:])
			if err != nil {
				return err
			}

			res, err := reg.Eval(args[0], params)
			if err != nil {
				return err
			}
			if strict {
				if err := res.Check(); err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), res)

			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when the result is NaN or infinite")

	return cmd
}

// parseArgs splits "key=value" pairs. Later pairs override earlier ones.
func parseArgs(pairs []string) (catalog.Args, error) {
	args := make(catalog.Args, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("argument %q is not of the form param=value", pair)
		}
		args[key] = value
	}

	return args, nil
}
