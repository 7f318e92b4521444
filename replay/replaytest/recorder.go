// Package replaytest provides an in-memory replay.Drawer for tests.
package replaytest

import (
	"sync"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/replay"
	"github.com/katalvlaran/algoviz/step"
)

// Frame is what a Recorder saw between two DrawBase calls.
type Frame struct {
	Diagram    replay.Diagram
	NodeColors map[string]step.Color
	EdgeColors map[core.EdgeKey]step.Color
	NodeText   map[string]string
	Info       []string
	Title      string
}

// Recorder remembers every frame it was asked to draw.
// SkipNodes and SkipEdges leave shapes out of the returned handles.
type Recorder struct {
	mu sync.Mutex

	SkipNodes map[string]bool
	SkipEdges map[core.EdgeKey]bool

	frames  []Frame
	nodes   []string
	edges   []core.EdgeKey
	flushes int
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{SkipNodes: map[string]bool{}, SkipEdges: map[core.EdgeKey]bool{}}
}

// DrawBase implements replay.Drawer.
func (r *Recorder) DrawBase(d replay.Diagram) replay.Handles {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.frames = append(r.frames, Frame{
		Diagram:    d,
		NodeColors: map[string]step.Color{},
		EdgeColors: map[core.EdgeKey]step.Color{},
		NodeText:   map[string]string{},
	})
	r.nodes = r.nodes[:0]
	r.edges = r.edges[:0]

	h := replay.Handles{
		Nodes: map[string]replay.Handle{},
		Edges: map[core.EdgeKey]replay.Handle{},
		Texts: map[string]replay.Handle{},
	}
	for _, n := range d.Nodes {
		if r.SkipNodes[n.ID] {
			continue
		}
		h.Nodes[n.ID] = replay.Handle(len(r.nodes))
		h.Texts[n.ID] = replay.Handle(len(r.nodes))
		r.nodes = append(r.nodes, n.ID)
	}
	for _, e := range d.Edges {
		if r.SkipEdges[e.Key] {
			continue
		}
		h.Edges[e.Key] = replay.Handle(len(r.edges))
		r.edges = append(r.edges, e.Key)
	}

	return h
}

func (r *Recorder) current() *Frame { return &r.frames[len(r.frames)-1] }

// FillNode implements replay.Drawer.
func (r *Recorder) FillNode(h replay.Handle, c step.Color) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current().NodeColors[r.nodes[h]] = c
}

// StrokeEdge implements replay.Drawer.
func (r *Recorder) StrokeEdge(h replay.Handle, c step.Color) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current().EdgeColors[r.edges[h]] = c
}

// LabelNode implements replay.Drawer.
func (r *Recorder) LabelNode(h replay.Handle, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current().NodeText[r.nodes[h]] = text
}

// SetInfo implements replay.Drawer.
func (r *Recorder) SetInfo(lines []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current().Info = append([]string(nil), lines...)
}

// SetTitle implements replay.Drawer.
func (r *Recorder) SetTitle(title string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current().Title = title
}

// Flush implements replay.Flusher.
func (r *Recorder) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flushes++
	return nil
}

// Frames returns how many frames were drawn.
func (r *Recorder) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}

// Flushes returns how many times Flush was called.
func (r *Recorder) Flushes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.flushes
}

// Last returns the most recent frame. It panics when nothing was drawn.
func (r *Recorder) Last() Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames[len(r.frames)-1]
}
