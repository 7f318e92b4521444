package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoviz/algorithms"
	"github.com/katalvlaran/algoviz/config"
	"github.com/katalvlaran/algoviz/web"
)

func newServeCommand(ctx context.Context, input *Input) *cobra.Command {
	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the visualizer over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := input.resolve(cmd)
			if err != nil {
				return err
			}
			h := web.NewHandler(algorithms.Default(s.log), s.graph, s.start,
				web.WithDelay(s.cfg.Delay),
				web.WithLogger(s.log),
			)

			return h.Serve(ctx, s.cfg.Server.Addr, nil)
		},
	}
	c.Flags().StringVar(&input.addr, "addr", config.DefaultAddr, "listen address")

	return c
}
