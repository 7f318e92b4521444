package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoviz/algorithms"
	"github.com/katalvlaran/algoviz/step"
)

func newStepsCommand(input *Input) *cobra.Command {
	c := &cobra.Command{
		Use:   "steps <algorithm>",
		Short: "Print the recorded step sequence of an algorithm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := input.resolve(cmd)
			if err != nil {
				return err
			}
			_, seq, err := algorithms.Default(s.log).Run(args[0], s.graph, s.start)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if input.jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					Name  string      `json:"name"`
					Start string      `json:"start"`
					Steps []step.Step `json:"steps"`
				}{Name: args[0], Start: s.start, Steps: seq.Slice()})
			}
			for i, st := range seq.All() {
				fmt.Fprintf(out, "%3d  %s\n", i, st)
			}
			return nil
		},
	}
	c.Flags().BoolVar(&input.jsonOutput, "json", false, "print JSON instead of text")

	return c
}
