package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/config"
	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/logging"
)

// Input holds the raw command-line flags.
type Input struct {
	configPath string
	verbose    bool
	start      string
	graph      string
	delay      time.Duration

	// steps
	jsonOutput bool

	// render
	stepIndex int
	format    string
	output    string

	// serve
	addr string

	// list
	listGraphs bool
}

// settings is everything a command needs after flags and file are merged.
type settings struct {
	cfg   config.Config
	graph *core.Graph
	start string
	log   *logrus.Logger
}

// resolve merges defaults, the config file and changed flags, in that
// order, then builds the graph.
func (i *Input) resolve(cmd *cobra.Command) (*settings, error) {
	cfg := config.Default()
	if i.configPath != "" {
		loaded, err := config.Load(i.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("start") {
		cfg.Start = i.start
	}
	if flags.Changed("graph") {
		cfg.GraphName = i.graph
		cfg.Graph = nil
		cfg.Terrain = nil
	}
	if flags.Changed("delay") {
		cfg.Delay = i.delay
	}
	if flags.Changed("addr") {
		cfg.Server.Addr = i.addr
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g, err := cfg.BuildGraph()
	if err != nil {
		return nil, err
	}
	start := cfg.Start
	if start == "" {
		start = builder.StartOf(g)
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: start vertex %q is not in the graph", config.ErrInvalidConfig, start)
	}

	return &settings{
		cfg:   cfg,
		graph: g,
		start: start,
		log:   newLogger(cmd.ErrOrStderr(), i.verbose),
	}, nil
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	return logging.New(w, verbose)
}
