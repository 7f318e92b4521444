package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/algoviz/algorithms"
	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/logging"
	"github.com/katalvlaran/algoviz/metrics"
	"github.com/katalvlaran/algoviz/replay"
)

// ErrUnknownStrategy is algorithms.ErrUnknownStrategy.
var ErrUnknownStrategy = algorithms.ErrUnknownStrategy

// DefaultDelay is the auto-advance interval.
const DefaultDelay = 500 * time.Millisecond

// MenuTitle heads the menu frame.
const MenuTitle = "Choose an algorithm"

// MenuDrawer is implemented by surfaces that can show the menu.
type MenuDrawer interface {
	DrawMenu(title string, items []string) error
}

// View names what a Session currently shows.
type View int

const (
	ViewMenu View = iota
	ViewVisualizer
)

// String implements fmt.Stringer.
func (v View) String() string {
	if v == ViewVisualizer {
		return "visualizer"
	}

	return "menu"
}

// Option configures a Session.
type Option func(*Session)

// WithDelay sets the auto-advance interval; non-positive keeps the default.
func WithDelay(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.delay = d
		}
	}
}

// WithLogger sets the logger; nil discards.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Session) { s.baseLog = logging.OrDiscard(l) }
}

// Session switches one drawing surface between the menu and visualizers.
type Session struct {
	mu sync.Mutex

	id       string
	registry *algorithms.Registry
	graph    *core.Graph
	start    string
	drawer   replay.Drawer
	delay    time.Duration
	baseLog  logrus.FieldLogger
	log      logrus.FieldLogger

	view   View
	vis    *Visualizer
	closed bool
}

// New creates a Session over g, starting algorithms at start and drawing on
// d. It does not draw anything until ShowMenu or ShowVisualizer.
func New(reg *algorithms.Registry, g *core.Graph, start string, d replay.Drawer, opts ...Option) *Session {
	s := &Session{
		id:       uuid.NewString(),
		registry: reg,
		graph:    g,
		start:    start,
		drawer:   d,
		delay:    DefaultDelay,
		baseLog:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.baseLog.WithFields(logrus.Fields{"module": "session", "session": s.id})
	metrics.ActiveSessions.Inc()
	s.log.Debug("session opened")

	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Menu returns the algorithm names in menu order.
func (s *Session) Menu() []string { return s.registry.Names() }

// View returns what is currently shown, and the visualizer when that is it.
func (s *Session) View() (View, *Visualizer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.view, s.vis
}

// ShowMenu discards the current visualizer and shows the menu.
func (s *Session) ShowMenu() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	return s.showMenu()
}

func (s *Session) showMenu() error {
	if s.vis != nil {
		s.vis.Close()
		s.vis = nil
	}
	s.view = ViewMenu
	if md, ok := s.drawer.(MenuDrawer); ok {
		return md.DrawMenu(MenuTitle, s.registry.Names())
	}

	return nil
}

// ShowVisualizer records name on the session graph and shows its first
// step. When the name is unknown or recording fails the menu is shown
// instead and the error returned.
func (s *Session) ShowVisualizer(name string) (*Visualizer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrClosed
	}
	strategy, seq, err := s.registry.Run(name, s.graph, s.start)
	if err != nil {
		if errors.Is(err, algorithms.ErrUnknownStrategy) {
			s.log.Warnf("unknown strategy %q, back to menu", name)
		}
		if menuErr := s.showMenu(); menuErr != nil {
			return nil, errors.Join(err, menuErr)
		}
		return nil, err
	}
	if s.vis != nil {
		s.vis.Close()
	}

	eng := replay.NewEngine(s.graph, strategy.Rules(), seq,
		replay.WithDrawer(s.drawer),
		replay.WithLogger(s.log),
		replay.WithName(name),
	)
	v, err := newVisualizer(name, eng, s.delay, s.log)
	if err != nil {
		err = fmt.Errorf("session: open %s: %w", name, err)
		s.log.WithError(err).Warn("back to menu")
		if menuErr := s.showMenu(); menuErr != nil {
			return nil, errors.Join(err, menuErr)
		}
		return nil, err
	}
	s.vis = v
	s.view = ViewVisualizer
	s.log.WithField("steps", seq.Len()).Infof("showing %s", name)

	return v, nil
}

// ShowIndex opens the i-th menu entry (0-based).
func (s *Session) ShowIndex(i int) (*Visualizer, error) {
	names := s.registry.Names()
	if i < 0 || i >= len(names) {
		return nil, fmt.Errorf("%w: menu entry %d", ErrUnknownStrategy, i+1)
	}

	return s.ShowVisualizer(names[i])
}

// Close stops any running visualizer. It is safe to call twice.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	if s.vis != nil {
		s.vis.Close()
		s.vis = nil
	}
	s.closed = true
	metrics.ActiveSessions.Dec()
	s.log.Debug("session closed")

	return nil
}
