package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/xengvang1984/xengvang.com-e2e/pkg/environment"
)

func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env [name]",
		Short: "Print the base URL of an environment",
		Long:  "Resolve a test environment to its base URL, or list every environment when no name is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				url, err := environment.BaseURL(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(out, url)
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, env := range environment.All() {
				fmt.Fprintf(w, "%s\t%s\n", env, env.BaseURL())
			}
			return w.Flush()
		},
	}
}
