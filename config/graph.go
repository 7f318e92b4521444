package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/algoviz/core"
)

// GraphSpec is an inline graph:
//
//	graph:
//	  nodes:
//	    - {id: A, x: 50, y: 50}
//	    - {id: B, x: 150, y: 50}
//	  edges:              # unweighted adjacency, one direction per entry
//	    A: [B]
//	    B: [A]
//	  weighted:           # weighted adjacency
//	    A: {B: 4}
//	    B: {A: 4}
//	  dijkstra_nodes: [A, B]
//
// Mapping order in the file is the neighbor order algorithms see.
type GraphSpec struct {
	Nodes         []NodeSpec        `yaml:"nodes"`
	Edges         Adjacency         `yaml:"edges"`
	Weighted      WeightedAdjacency `yaml:"weighted"`
	DijkstraNodes []string          `yaml:"dijkstra_nodes"`
}

// NodeSpec positions one vertex.
type NodeSpec struct {
	ID string  `yaml:"id"`
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
}

// Adjacency is an insertion-ordered vertex → neighbors list.
type Adjacency []AdjacencyEntry

// AdjacencyEntry is one row of Adjacency.
type AdjacencyEntry struct {
	From string
	To   []string
}

// UnmarshalYAML keeps the mapping's key order.
func (a *Adjacency) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: edges must be a mapping", node.Line)
	}
	out := make(Adjacency, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var row AdjacencyEntry
		if err := node.Content[i].Decode(&row.From); err != nil {
			return err
		}
		if err := node.Content[i+1].Decode(&row.To); err != nil {
			return fmt.Errorf("edges[%s]: %w", row.From, err)
		}
		out = append(out, row)
	}
	*a = out

	return nil
}

// WeightedAdjacency is an insertion-ordered vertex → (neighbor, weight) list.
type WeightedAdjacency []WeightedEntry

// WeightedEntry is one row of WeightedAdjacency.
type WeightedEntry struct {
	From string
	To   []core.Edge
}

// UnmarshalYAML keeps the key order at both levels.
func (w *WeightedAdjacency) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: weighted must be a mapping", node.Line)
	}
	out := make(WeightedAdjacency, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var row WeightedEntry
		if err := node.Content[i].Decode(&row.From); err != nil {
			return err
		}
		inner := node.Content[i+1]
		if inner.Kind != yaml.MappingNode {
			return fmt.Errorf("line %d: weighted[%s] must be a mapping", inner.Line, row.From)
		}
		for j := 0; j+1 < len(inner.Content); j += 2 {
			e := core.Edge{From: row.From}
			if err := inner.Content[j].Decode(&e.To); err != nil {
				return err
			}
			if err := inner.Content[j+1].Decode(&e.Weight); err != nil {
				return fmt.Errorf("weighted[%s][%s]: %w", row.From, e.To, err)
			}
			row.To = append(row.To, e)
		}
		out = append(out, row)
	}
	*w = out

	return nil
}

func (s *GraphSpec) validate() error {
	if len(s.Nodes) == 0 {
		return fmt.Errorf("%w: graph has no nodes", ErrInvalidConfig)
	}
	seen := make(map[string]bool, len(s.Nodes))
	for _, n := range s.Nodes {
		if n.ID == "" {
			return fmt.Errorf("%w: node with empty id", ErrInvalidConfig)
		}
		if seen[n.ID] {
			return fmt.Errorf("%w: duplicate node %q", ErrInvalidConfig, n.ID)
		}
		seen[n.ID] = true
	}
	known := func(id, where string) error {
		if !seen[id] {
			return fmt.Errorf("%w: %s references unknown node %q", ErrInvalidConfig, where, id)
		}

		return nil
	}
	for _, row := range s.Edges {
		for _, to := range append([]string{row.From}, row.To...) {
			if err := known(to, "edges"); err != nil {
				return err
			}
		}
	}
	for _, row := range s.Weighted {
		if err := known(row.From, "weighted"); err != nil {
			return err
		}
		for _, e := range row.To {
			if err := known(e.To, "weighted"); err != nil {
				return err
			}
		}
	}
	for _, id := range s.DijkstraNodes {
		if err := known(id, "dijkstra_nodes"); err != nil {
			return err
		}
	}

	return nil
}

// Build validates s and turns it into a core.Graph. Edges are added as
// listed; an undirected graph lists both directions.
func (s *GraphSpec) Build() (*core.Graph, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	g := core.NewGraph(core.WithDijkstraVertices(s.DijkstraNodes...))
	for _, n := range s.Nodes {
		if err := g.AddVertex(n.ID, n.X, n.Y); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	for _, row := range s.Edges {
		for _, to := range row.To {
			if err := g.AddEdge(row.From, to); err != nil {
				return nil, fmt.Errorf("%w: edges[%s]: %w", ErrInvalidConfig, row.From, err)
			}
		}
	}
	for _, row := range s.Weighted {
		for _, e := range row.To {
			if err := g.AddWeightedEdge(e.From, e.To, e.Weight); err != nil {
				return nil, fmt.Errorf("%w: weighted[%s]: %w", ErrInvalidConfig, row.From, err)
			}
		}
	}

	return g, nil
}
