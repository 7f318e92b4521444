package session

import (
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/algoviz/replay"
	"github.com/katalvlaran/algoviz/step"
)

var (
	// ErrClosed is returned by every operation after Close.
	ErrClosed = errors.New("session: closed")

	// ErrAutoAdvancing is returned by Next and Prev while playing.
	ErrAutoAdvancing = errors.New("session: auto-advance is running")
)

// Status is a snapshot of a Visualizer's position.
type Status struct {
	Name    string
	Index   int
	Len     int
	Playing bool
}

// AtEnd reports whether the last step is shown.
func (s Status) AtEnd() bool { return s.Index >= s.Len-1 }

// Visualizer steps through one recorded sequence and renders every move.
type Visualizer struct {
	mu sync.Mutex

	name   string
	engine *replay.Engine
	delay  time.Duration
	log    logrus.FieldLogger

	index   int
	playing bool
	closed  bool

	// gen invalidates pending ticks whenever auto-advance stops.
	gen   uint64
	timer *time.Timer
}

func newVisualizer(name string, engine *replay.Engine, delay time.Duration, log logrus.FieldLogger) (*Visualizer, error) {
	v := &Visualizer{
		name:   name,
		engine: engine,
		delay:  delay,
		log:    log.WithField("strategy", name),
	}
	if err := v.render(); err != nil {
		return nil, err
	}

	return v, nil
}

// Name returns the strategy name.
func (v *Visualizer) Name() string { return v.name }

// Steps returns the recorded sequence.
func (v *Visualizer) Steps() step.Sequence { return v.engine.Sequence() }

// State returns the visual state of the current step.
func (v *Visualizer) State() (replay.VisualState, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return replay.VisualState{}, ErrClosed
	}

	return v.engine.State(v.index)
}

// Status returns the current position.
func (v *Visualizer) Status() Status {
	v.mu.Lock()
	defer v.mu.Unlock()

	return Status{Name: v.name, Index: v.index, Len: v.engine.Len(), Playing: v.playing}
}

// Next shows the following step. It is a no-op on the last step.
func (v *Visualizer) Next() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.manual(); err != nil {
		return err
	}
	if v.index+1 >= v.engine.Len() {
		return nil
	}
	v.index++

	return v.render()
}

// Prev shows the preceding step. It is a no-op on step 0.
func (v *Visualizer) Prev() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.manual(); err != nil {
		return err
	}
	if v.index == 0 {
		return nil
	}
	v.index--

	return v.render()
}

// Reset stops auto-advance and shows step 0.
func (v *Visualizer) Reset() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return ErrClosed
	}
	v.stop()
	v.index = 0

	return v.render()
}

// Play starts auto-advancing. From the last step it restarts at step 0.
// Playing an already playing visualizer does nothing.
func (v *Visualizer) Play() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return ErrClosed
	}
	if v.playing || v.engine.Len() < 2 {
		return nil
	}
	if v.index >= v.engine.Len()-1 {
		v.index = 0
		if err := v.render(); err != nil {
			return err
		}
	}
	v.playing = true
	v.gen++
	v.schedule(v.gen)
	v.log.Debug("auto-advance started")

	return nil
}

// Pause stops auto-advance, keeping the current step.
func (v *Visualizer) Pause() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.stop()
}

// TogglePlay pauses a playing visualizer and plays a paused one.
func (v *Visualizer) TogglePlay() error {
	v.mu.Lock()
	playing := v.playing
	v.mu.Unlock()

	if playing {
		v.Pause()
		return nil
	}

	return v.Play()
}

// Close stops auto-advance. Later calls return ErrClosed.
func (v *Visualizer) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.stop()
	v.closed = true
}

func (v *Visualizer) manual() error {
	if v.closed {
		return ErrClosed
	}
	if v.playing {
		return ErrAutoAdvancing
	}

	return nil
}

// stop must be called with v.mu held.
func (v *Visualizer) stop() {
	if !v.playing {
		return
	}
	v.playing = false
	v.gen++
	if v.timer != nil {
		v.timer.Stop()
		v.timer = nil
	}
	v.log.Debug("auto-advance stopped")
}

// schedule must be called with v.mu held.
func (v *Visualizer) schedule(gen uint64) {
	v.timer = time.AfterFunc(v.delay, func() { v.tick(gen) })
}

func (v *Visualizer) tick(gen uint64) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed || !v.playing || gen != v.gen {
		return
	}
	v.index++
	if err := v.render(); err != nil {
		v.log.WithError(err).Warn("auto-advance render failed")
		v.stop()
		return
	}
	if v.index >= v.engine.Len()-1 {
		v.stop()
		return
	}
	v.schedule(gen)
}

func (v *Visualizer) render() error {
	if v.engine.Len() == 0 {
		return nil
	}

	return v.engine.Render(v.index)
}
