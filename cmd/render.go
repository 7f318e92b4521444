package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoviz/algorithms"
	"github.com/katalvlaran/algoviz/canvas"
	"github.com/katalvlaran/algoviz/config"
	"github.com/katalvlaran/algoviz/replay"
)

func newRenderCommand(input *Input) *cobra.Command {
	c := &cobra.Command{
		Use:   "render <algorithm>",
		Short: "Render one step of an algorithm as SVG or ANSI text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := input.resolve(cmd)
			if err != nil {
				return err
			}
			format := s.cfg.Renderer
			if cmd.Flags().Changed("format") {
				format = input.format
			}

			strategy, seq, err := algorithms.Default(s.log).Run(args[0], s.graph, s.start)
			if err != nil {
				return err
			}
			index := input.stepIndex
			if index < 0 {
				index = seq.Last()
			}

			var out io.Writer = cmd.OutOrStdout()
			if input.output != "" && input.output != "-" {
				f, err := os.Create(input.output)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}

			var drawer replay.Drawer
			switch format {
			case config.RendererSVG:
				drawer = canvas.NewSVG(canvas.WithSVGOutput(out))
			case config.RendererANSI:
				drawer = canvas.NewTerminal(canvas.WithTerminalOutput(out), canvas.WithColor(colorable(out)))
			default:
				return fmt.Errorf("%w: format %q", config.ErrInvalidConfig, format)
			}

			eng := replay.NewEngine(s.graph, strategy.Rules(), seq,
				replay.WithDrawer(drawer),
				replay.WithLogger(s.log),
				replay.WithName(strategy.Name()),
			)

			return eng.Render(index)
		},
	}
	f := c.Flags()
	f.IntVar(&input.stepIndex, "step", -1, "0-based step index; negative means the last step")
	f.StringVar(&input.format, "format", config.DefaultRenderer, "output format: ansi or svg")
	f.StringVarP(&input.output, "output", "o", "-", "output file, - for stdout")

	return c
}
