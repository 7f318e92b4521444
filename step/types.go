// Package step defines the vocabulary shared by every recording algorithm
// and the replay engine: the Step record, its Kind tag, the named Colors a
// step may carry, and the immutable Sequence an algorithm run produces.
//
// Algorithms write into a Recorder while they run. Once the run completes,
// Recorder.Sequence freezes the records into a Sequence that nothing can
// modify afterwards; replays only read it.
package step

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when a step index falls outside [0, Len).
var ErrIndexOutOfRange = errors.New("step: index out of range")

// ErrUnknownKind is returned when parsing an unrecognised tag.
var ErrUnknownKind = errors.New("step: unknown kind")

// Kind tags one discrete algorithm action.
type Kind uint8

const (
	// KindVisit marks a vertex as reached (BFS, DFS) or finalised (Dijkstra).
	KindVisit Kind = iota + 1

	// KindProcess marks a vertex as dequeued (BFS) or finished post-order (DFS).
	KindProcess

	// KindExplore marks an edge being traversed or relaxed.
	KindExplore

	// KindUpdateDistance records a strictly better tentative distance.
	KindUpdateDistance

	// KindTestEdge marks an MST candidate edge under consideration.
	KindTestEdge

	// KindAddEdgeToMST marks an edge accepted into the spanning tree.
	KindAddEdgeToMST

	// KindAddNodeToMST marks a vertex joining the spanning tree.
	KindAddNodeToMST

	// KindDiscardEdge marks a rejected MST candidate.
	KindDiscardEdge

	// KindExploreEdge marks an edge pushed into Prim's frontier.
	KindExploreEdge

	// KindFinish is the BFS completion sentinel. It carries no data.
	KindFinish
)

var kindNames = map[Kind]string{
	KindVisit:          "visit",
	KindProcess:        "process",
	KindExplore:        "explore",
	KindUpdateDistance: "update_distance",
	KindTestEdge:       "test_edge",
	KindAddEdgeToMST:   "add_edge_to_mst",
	KindAddNodeToMST:   "add_node_to_mst",
	KindDiscardEdge:    "discard_edge",
	KindExploreEdge:    "explore_edge",
	KindFinish:         "finish",
}

// String returns the tag name, e.g. "update_distance".
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}

	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	for kind, name := range kindNames {
		if name == string(b) {
			*k = kind
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrUnknownKind, string(b))
}

// IsEdge reports whether steps of this kind refer to an edge (From, To).
func (k Kind) IsEdge() bool {
	switch k {
	case KindExplore, KindTestEdge, KindAddEdgeToMST, KindDiscardEdge, KindExploreEdge:
		return true
	default:
		return false
	}
}

// Color is a named drawing color carried by traversal steps.
type Color string

// Palette used by the algorithms and the replay rules.
const (
	ColorNone       Color = ""
	ColorOrange     Color = "orange"
	ColorGray       Color = "gray"
	ColorRed        Color = "red"
	ColorGreen      Color = "green"
	ColorLightGreen Color = "lightgreen"
	ColorLightGray  Color = "lightgray"
	ColorLightBlue  Color = "lightblue"
	ColorBlack      Color = "black"
	ColorBlue       Color = "blue"
	ColorPurple     Color = "purple"
	ColorBrown      Color = "brown"
)

// Step is one recorded action. Which fields are meaningful depends on Kind:
//
//	visit, process:      Vertex, Color
//	explore:             From, To, Color (To only for Dijkstra)
//	update_distance:     Vertex, Distance, Parent ("" when none)
//	MST edge kinds:      From, To
//	add_node_to_mst:     Vertex
//	finish:              nothing
type Step struct {
	Kind     Kind    `json:"kind"`
	Vertex   string  `json:"vertex,omitempty"`
	From     string  `json:"from,omitempty"`
	To       string  `json:"to,omitempty"`
	Color    Color   `json:"color,omitempty"`
	Distance float64 `json:"distance,omitempty"`
	Parent   string  `json:"parent,omitempty"`
}

// HasParent reports whether an update_distance step names a predecessor.
func (s Step) HasParent() bool { return s.Parent != "" }

// String renders a compact human form, e.g. "explore A→B red".
func (s Step) String() string {
	switch {
	case s.Kind == KindFinish:
		return s.Kind.String()
	case s.Kind == KindUpdateDistance:
		if s.HasParent() {
			return fmt.Sprintf("%s %s=%g via %s", s.Kind, s.Vertex, s.Distance, s.Parent)
		}
		return fmt.Sprintf("%s %s=%g", s.Kind, s.Vertex, s.Distance)
	case s.Kind.IsEdge():
		if s.Color != ColorNone {
			return fmt.Sprintf("%s %s→%s %s", s.Kind, s.From, s.To, s.Color)
		}
		return fmt.Sprintf("%s %s→%s", s.Kind, s.From, s.To)
	default:
		if s.Color != ColorNone {
			return fmt.Sprintf("%s %s %s", s.Kind, s.Vertex, s.Color)
		}
		return fmt.Sprintf("%s %s", s.Kind, s.Vertex)
	}
}
