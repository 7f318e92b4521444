package algorithms

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/logging"
	"github.com/katalvlaran/algoviz/metrics"
	"github.com/katalvlaran/algoviz/step"
)

// ErrUnknownStrategy is returned for a name nobody registered.
var ErrUnknownStrategy = errors.New("algorithms: unknown strategy")

// Registry maps names to strategy constructors, remembering registration
// order for menus. It is safe for concurrent reads; Register should only
// be called at startup.
type Registry struct {
	mu    sync.RWMutex
	cons  map[string]Constructor
	names []string
	log   logrus.FieldLogger
}

// NewRegistry creates an empty Registry. A nil logger discards output.
func NewRegistry(log logrus.FieldLogger) *Registry {
	return &Registry{
		cons: make(map[string]Constructor),
		log:  logging.OrDiscard(log).WithField("module", "algorithms"),
	}
}

// Default returns a registry with BFS, DFS, Dijkstra, Prim and Kruskal,
// in that order.
func Default(log logrus.FieldLogger) *Registry {
	r := NewRegistry(log)
	r.Register(NameBFS, func() Strategy { return BFS() })
	r.Register(NameDFS, func() Strategy { return DFS() })
	r.Register(NameDijkstra, func() Strategy { return Dijkstra() })
	r.Register(NamePrim, func() Strategy { return Prim() })
	r.Register(NameKruskal, func() Strategy { return Kruskal() })

	return r
}

// Register adds a constructor. Panics on duplicate name to surface
// misconfiguration early.
func (r *Registry) Register(name string, c Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.cons[name]; exists {
		panic(fmt.Sprintf("algorithms registry: duplicate name %q", name))
	}
	r.cons[name] = c
	r.names = append(r.names, name)
}

// New constructs the strategy registered under name.
func (r *Registry) New(name string) (Strategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.cons[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return c(), nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.cons[name]
	return ok
}

// Names returns registered names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Run constructs name and records it on g from start.
func (r *Registry) Run(name string, g *core.Graph, start string) (Strategy, step.Sequence, error) {
	s, err := r.New(name)
	if err != nil {
		return nil, step.Sequence{}, err
	}
	log := r.log.WithFields(logrus.Fields{"strategy": name, "start": start})

	seq, err := s.Run(g, start)
	if err != nil {
		metrics.StrategyRuns.WithLabelValues(name, metrics.OutcomeError).Inc()
		log.WithError(err).Warn("recording failed")
		return nil, step.Sequence{}, err
	}
	metrics.StrategyRuns.WithLabelValues(name, metrics.OutcomeOK).Inc()
	metrics.StepsRecorded.WithLabelValues(name).Observe(float64(seq.Len()))
	log.Debugf("recorded %d steps", seq.Len())

	return s, seq, nil
}
