package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoviz/algorithms"
	"github.com/katalvlaran/algoviz/builder"
)

func newListCommand(input *Input) *cobra.Command {
	c := &cobra.Command{
		Use:   "list",
		Short: "List the algorithms with their step counts, or the builtin graphs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if input.listGraphs {
				for _, name := range builder.Names() {
					fmt.Fprintln(out, name)
				}
				return nil
			}

			s, err := input.resolve(cmd)
			if err != nil {
				return err
			}
			reg := algorithms.Default(s.log)
			for i, name := range reg.Names() {
				_, seq, err := reg.Run(name, s.graph, s.start)
				if err != nil {
					fmt.Fprintf(out, "%d. %-9s error: %v\n", i+1, name, err)
					continue
				}
				fmt.Fprintf(out, "%d. %-9s %d steps\n", i+1, name, seq.Len())
			}
			return nil
		},
	}
	c.Flags().BoolVar(&input.listGraphs, "graphs", false, "list builtin graphs instead")

	return c
}
