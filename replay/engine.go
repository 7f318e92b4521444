package replay

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/logging"
	"github.com/katalvlaran/algoviz/metrics"
	"github.com/katalvlaran/algoviz/step"
)

// StateAt folds seq[0..index] under rules and returns the result.
func StateAt(g *core.Graph, rules Rules, seq step.Sequence, index int) (VisualState, error) {
	if index < 0 || index >= seq.Len() {
		return VisualState{}, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, seq.Len())
	}
	f := rules.NewFold(g)
	for _, st := range seq.Prefix(index) {
		f.Apply(st)
	}
	metrics.FoldedSteps.Add(float64(index + 1))

	vs := f.State()
	vs.Index = index

	return vs, nil
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithDrawer attaches the surface Render paints on.
func WithDrawer(d Drawer) EngineOption {
	return func(e *Engine) { e.drawer = d }
}

// WithLogger sets the logger; nil keeps the discard logger.
func WithLogger(l logrus.FieldLogger) EngineOption {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithName labels metrics and log lines with the strategy name.
func WithName(name string) EngineOption {
	return func(e *Engine) { e.name = name }
}

// Engine replays one sequence. It is safe for concurrent use.
type Engine struct {
	mu sync.Mutex

	graph  *core.Graph
	rules  Rules
	seq    step.Sequence
	drawer Drawer
	name   string
	log    logrus.FieldLogger

	diagram Diagram

	// fold of steps [0..cached]; cached == -1 means empty
	cache  Fold
	cached int

	// checkpoints[i] is a frozen fold of steps [0..i]
	checkpoints map[int]Fold
}

// checkpointEvery is the spacing of frozen folds kept for backward seeks.
const checkpointEvery = 32

// NewEngine binds g, rules and seq.
func NewEngine(g *core.Graph, rules Rules, seq step.Sequence, opts ...EngineOption) *Engine {
	e := &Engine{
		graph:       g,
		rules:       rules,
		seq:         seq,
		log:         logging.Discard(),
		cached:      -1,
		checkpoints: make(map[int]Fold),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.diagram = NewDiagram(g, rules.Layer())
	e.log = e.log.WithField("module", "replay").WithField("strategy", e.name)

	return e
}

// Len returns the number of steps in the bound sequence.
func (e *Engine) Len() int { return e.seq.Len() }

// Sequence returns the bound sequence.
func (e *Engine) Sequence() step.Sequence { return e.seq }

// Diagram returns the base diagram.
func (e *Engine) Diagram() Diagram { return e.diagram }

// State returns the visual state after step index.
func (e *Engine) State(index int) (VisualState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state(index)
}

func (e *Engine) state(index int) (VisualState, error) {
	if index < 0 || index >= e.seq.Len() {
		return VisualState{}, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, e.seq.Len())
	}

	// Moving backwards restarts from the nearest checkpoint.
	if e.cache == nil || index < e.cached {
		e.rewind(index)
	}
	for i, st := range e.seq.Range(e.cached+1, index) {
		e.cache.Apply(st)
		if (i+1)%checkpointEvery == 0 {
			if _, ok := e.checkpoints[i]; !ok {
				e.checkpoints[i] = e.cache.Clone()
			}
		}
	}
	metrics.FoldedSteps.Add(float64(index - e.cached))
	e.cached = index

	vs := e.cache.State()
	vs.Index = index

	return vs, nil
}

// rewind resets the cache to the latest checkpoint at or before index.
func (e *Engine) rewind(index int) {
	best := -1
	for i := range e.checkpoints {
		if i <= index && i > best {
			best = i
		}
	}
	if best < 0 {
		e.cache = e.rules.NewFold(e.graph)
		e.cached = -1
		return
	}
	e.cache = e.checkpoints[best].Clone()
	e.cached = best
}

// Render paints the state after step index on the attached Drawer.
func (e *Engine) Render(index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.drawer == nil {
		return ErrNoDrawer
	}
	vs, err := e.state(index)
	if err != nil {
		return err
	}

	h := e.drawer.DrawBase(e.diagram)
	for _, v := range slices.Sorted(maps.Keys(vs.NodeColors)) {
		if hd, ok := h.Nodes[v]; ok {
			e.drawer.FillNode(hd, vs.NodeColors[v])
		} else {
			e.log.Debugf("no shape for vertex %s", v)
		}
	}
	for _, k := range slices.SortedFunc(maps.Keys(vs.EdgeColors), compareKeys) {
		if hd, ok := h.Edges[k]; ok {
			e.drawer.StrokeEdge(hd, vs.EdgeColors[k])
		} else {
			e.log.Debugf("no shape for edge %s", k)
		}
	}
	for _, v := range slices.Sorted(maps.Keys(vs.NodeText)) {
		if hd, ok := h.Texts[v]; ok {
			e.drawer.LabelNode(hd, vs.NodeText[v])
		}
	}
	e.drawer.SetInfo(vs.Info)
	e.drawer.SetTitle(fmt.Sprintf("Step: %d / %d", index, e.seq.Last()))
	metrics.ReplayRenders.WithLabelValues(e.name).Inc()

	if f, ok := e.drawer.(Flusher); ok {
		return f.Flush()
	}

	return nil
}

func compareKeys(a, b core.EdgeKey) int {
	return cmp.Or(strings.Compare(a.A, b.A), strings.Compare(a.B, b.B))
}
