package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/algoviz/algorithms"
	"github.com/katalvlaran/algoviz/canvas"
	"github.com/katalvlaran/algoviz/session"
)

// ErrNotATerminal is returned when the interactive player has no TTY.
var ErrNotATerminal = errors.New("interactive mode needs a terminal; try 'algoviz list', 'render' or 'serve'")

const keyHelp = "n next · p prev · space play/pause · s stop · b back · q quit"

// Control bytes in raw mode.
const (
	keyCtrlC  = 0x03
	keyCtrlD  = 0x04
	keyEscape = 0x1b
)

func newInteractiveCommand(ctx context.Context, input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		in, ok := cmd.InOrStdin().(*os.File)
		if !ok || !isTerminal(in) {
			return ErrNotATerminal
		}
		s, err := input.resolve(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		state, err := term.MakeRaw(int(in.Fd()))
		if err != nil {
			return fmt.Errorf("raw mode: %w", err)
		}
		defer func() { _ = term.Restore(int(in.Fd()), state) }()

		drawer := canvas.NewTerminal(
			canvas.WithTerminalOutput(out),
			canvas.WithColor(colorable(out)),
			canvas.WithClear(),
			canvas.WithRawMode(),
		)
		sess := session.New(algorithms.Default(s.log), s.graph, s.start, drawer,
			session.WithDelay(s.cfg.Delay),
			session.WithLogger(s.log),
		)
		defer sess.Close()

		if s.cfg.Algorithm != "" {
			if _, err := sess.ShowVisualizer(s.cfg.Algorithm); err != nil {
				s.log.WithError(err).Warn("configured algorithm unavailable")
			}
		} else if err := sess.ShowMenu(); err != nil {
			return err
		}
		fmt.Fprint(out, keyHelp+"\r\n")

		return runKeys(ctx, in, sess, func(err error) {
			s.log.WithError(err).Debug("key ignored")
		})
	}
}

// runKeys feeds key presses from r to the session until quit, EOF or ctx.
func runKeys(ctx context.Context, r io.Reader, sess *session.Session, ignored func(error)) error {
	keys := make(chan byte)
	errc := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go func() {
		buf := make([]byte, 1)
		for {
			n, err := r.Read(buf)
			if err != nil {
				errc <- err
				return
			}
			if n == 1 {
				select {
				case keys <- buf[0]:
				case <-done:
					return
				}
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-errc:
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		case k := <-keys:
			quit, err := handleKey(sess, k)
			if quit {
				return nil
			}
			if err != nil && ignored != nil {
				ignored(err)
			}
		}
	}
}

// handleKey applies one key press. Keys that make no sense in the current
// view are ignored.
func handleKey(sess *session.Session, k byte) (quit bool, err error) {
	switch k {
	case 'q', keyCtrlC, keyCtrlD:
		return true, nil
	}

	view, v := sess.View()
	if view == session.ViewMenu {
		if k >= '1' && k <= '9' {
			_, err = sess.ShowIndex(int(k - '1'))
		}
		return false, err
	}

	switch k {
	case 'n', 'l':
		err = v.Next()
	case 'p', 'h':
		err = v.Prev()
	case ' ':
		err = v.TogglePlay()
	case 's':
		err = v.Reset()
	case 'b', keyEscape:
		err = sess.ShowMenu()
	}

	return false, err
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// colorable reports whether w is a terminal that wants colour.
func colorable(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || !isTerminal(f) {
		return false
	}
	// https://no-color.org/
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if t, ok := os.LookupEnv("TERM"); ok {
		switch t {
		case "dumb", "unknown":
			return false
		}
	}

	return true
}
