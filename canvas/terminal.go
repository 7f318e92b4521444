package canvas

import (
	"io"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"

	"github.com/katalvlaran/algoviz/replay"
	"github.com/katalvlaran/algoviz/step"
)

// Default pixels per character cell. Terminal cells are roughly twice as
// tall as they are wide.
const (
	defaultScaleX = 6.0
	defaultScaleY = 15.0

	// A frame never grows past maxCols x maxRows; wider diagrams are
	// drawn at a coarser scale.
	maxCols = 240
	maxRows = 80
)

// ANSI sequence that homes the cursor and clears the screen.
const clearScreen = "\x1b[H\x1b[2J"

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithTerminalOutput makes Flush write every frame to w.
func WithTerminalOutput(w io.Writer) TerminalOption {
	return func(t *Terminal) { t.out = w }
}

// WithColor forces ANSI colours on or off regardless of the environment.
func WithColor(on bool) TerminalOption {
	return func(t *Terminal) { t.colored = on }
}

// WithClear prefixes every flushed frame with a clear-screen sequence.
func WithClear() TerminalOption {
	return func(t *Terminal) { t.clear = true }
}

// WithRawMode ends lines with CRLF, as a terminal in raw mode expects.
func WithRawMode() TerminalOption {
	return func(t *Terminal) { t.eol = "\r\n" }
}

// WithScale sets how many diagram units map to one cell on each axis.
// Non-positive values keep the defaults.
func WithScale(x, y float64) TerminalOption {
	return func(t *Terminal) {
		if x > 0 {
			t.scaleX = x
		}
		if y > 0 {
			t.scaleY = y
		}
	}
}

// Terminal is a replay.Drawer that rasterises frames onto a character grid.
type Terminal struct {
	mu sync.Mutex

	out     io.Writer
	colored bool
	clear   bool
	eol     string
	scaleX  float64
	scaleY  float64

	// effective scale of the frame being rendered
	sx, sy float64

	diagram replay.Diagram
	fills   []step.Color
	strokes []step.Color
	labels  []string
	info    []string
	title   string

	last string
}

// NewTerminal returns a Terminal. Colours default to on.
func NewTerminal(opts ...TerminalOption) *Terminal {
	t := &Terminal{
		colored: true,
		eol:     "\n",
		scaleX:  defaultScaleX,
		scaleY:  defaultScaleY,
	}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// DrawBase implements replay.Drawer.
func (t *Terminal) DrawBase(d replay.Diagram) replay.Handles {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.diagram = d
	t.fills = make([]step.Color, len(d.Nodes))
	t.strokes = make([]step.Color, len(d.Edges))
	t.labels = make([]string, len(d.Nodes))
	t.info = nil
	t.title = ""

	return indexHandles(d)
}

// FillNode implements replay.Drawer.
func (t *Terminal) FillNode(h replay.Handle, c step.Color) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if int(h) < len(t.fills) {
		t.fills[h] = c
	}
}

// StrokeEdge implements replay.Drawer.
func (t *Terminal) StrokeEdge(h replay.Handle, c step.Color) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if int(h) < len(t.strokes) {
		t.strokes[h] = c
	}
}

// LabelNode implements replay.Drawer.
func (t *Terminal) LabelNode(h replay.Handle, text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if int(h) < len(t.labels) {
		t.labels[h] = text
	}
}

// SetInfo implements replay.Drawer.
func (t *Terminal) SetInfo(lines []string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.info = append([]string(nil), lines...)
}

// SetTitle implements replay.Drawer.
func (t *Terminal) SetTitle(title string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.title = title
}

// Flush rasterises the pending frame and writes it to the output.
func (t *Terminal) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.last = t.render()
	if t.out == nil {
		return nil
	}
	frame := t.last
	if t.clear {
		frame = clearScreen + frame
	}
	_, err := io.WriteString(t.out, frame)

	return err
}

// String returns the most recently flushed frame.
func (t *Terminal) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.last
}

// owner tags which shape a cell belongs to.
type owner struct {
	kind  byte // 0 empty, 'e' edge, 'n' node, 't' text
	index int
}

type cell struct {
	r rune
	o owner
}

type grid struct {
	cells [][]cell
}

func newGrid(rows, cols int) *grid {
	g := &grid{cells: make([][]cell, rows)}
	for i := range g.cells {
		g.cells[i] = make([]cell, cols)
		for j := range g.cells[i] {
			g.cells[i][j].r = ' '
		}
	}

	return g
}

func (g *grid) set(row, col int, r rune, o owner) {
	if row < 0 || row >= len(g.cells) || col < 0 || col >= len(g.cells[row]) {
		return
	}
	g.cells[row][col] = cell{r: r, o: o}
}

func (g *grid) text(row, col int, s string, o owner) {
	for i, r := range []rune(s) {
		g.set(row, col+i, r, o)
	}
}

func (t *Terminal) cellOf(x, y float64) (row, col int) {
	if !finite(x) || !finite(y) {
		return 0, 0
	}

	return int(math.Round(y / t.sy)), int(math.Round(x / t.sx))
}

// fit picks the frame scale so that every vertex lands inside the
// maxCols x maxRows grid, counting space for the widest box.
func (t *Terminal) fit() {
	t.sx, t.sy = t.scaleX, t.scaleY
	var spanX, spanY float64
	for _, n := range t.diagram.Nodes {
		if finite(n.Pos.X) {
			spanX = max(spanX, math.Abs(n.Pos.X))
		}
		if finite(n.Pos.Y) {
			spanY = max(spanY, math.Abs(n.Pos.Y))
		}
	}
	if s := spanX / (maxCols / 2); s > t.sx {
		t.sx = s
	}
	if s := spanY / (maxRows - 2); s > t.sy {
		t.sy = s
	}
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

func (t *Terminal) render() string {
	// 1. Grid size from the furthest vertex, plus room for labels
	t.fit()
	rows, cols := 1, 1
	for i, n := range t.diagram.Nodes {
		r, c := t.cellOf(n.Pos.X, n.Pos.Y)
		width := max(len([]rune(n.ID))+2, len([]rune(t.labels[i])))
		rows = max(rows, r+2)
		cols = max(cols, c+width+1)
	}
	g := newGrid(rows, cols)

	// 2. Edges, then their weights at the midpoint
	for i, e := range t.diagram.Edges {
		r1, c1 := t.cellOf(e.From.X, e.From.Y)
		r2, c2 := t.cellOf(e.To.X, e.To.Y)
		glyph := lineGlyph(r2-r1, c2-c1)
		o := owner{kind: 'e', index: i}
		plotLine(r1, c1, r2, c2, func(r, c int) { g.set(r, c, glyph, o) })
		if e.Weighted {
			w := formatWeight(e.Weight)
			g.text((r1+r2)/2, (c1+c2)/2-len(w)/2, w, o)
		}
	}

	// 3. Nodes as "(ID)" centred on their cell, label underneath
	for i, n := range t.diagram.Nodes {
		r, c := t.cellOf(n.Pos.X, n.Pos.Y)
		box := "(" + n.ID + ")"
		g.text(r, c-len([]rune(box))/2, box, owner{kind: 'n', index: i})
		if l := t.labels[i]; l != "" {
			g.text(r+1, c-len([]rune(l))/2, l, owner{kind: 't', index: i})
		}
	}

	// 4. Serialise
	var sb strings.Builder
	sb.WriteString(t.title)
	sb.WriteString(t.eol)
	for _, row := range g.cells {
		sb.WriteString(t.paintRow(row))
		sb.WriteString(t.eol)
	}
	for _, line := range t.info {
		sb.WriteString(line)
		sb.WriteString(t.eol)
	}

	return sb.String()
}

// paintRow colours runs of cells that share an owner.
func (t *Terminal) paintRow(row []cell) string {
	end := len(row)
	for end > 0 && row[end-1].r == ' ' {
		end--
	}
	var sb strings.Builder
	for i := 0; i < end; {
		j := i
		var run []rune
		for j < end && row[j].o == row[i].o {
			run = append(run, row[j].r)
			j++
		}
		sb.WriteString(t.style(row[i].o).Sprint(string(run)))
		i = j
	}

	return sb.String()
}

func (t *Terminal) style(o owner) *color.Color {
	var c *color.Color
	switch o.kind {
	case 'n':
		if fill := t.fills[o.index]; fill != step.ColorNone {
			c = color.New(background(fill), color.FgBlack, color.Bold)
		} else {
			c = color.New(color.Bold)
		}
	case 'e':
		if stroke := t.strokes[o.index]; stroke != step.ColorNone {
			c = color.New(foreground(stroke), color.Bold)
		} else {
			c = color.New(color.FgHiBlack)
		}
	default:
		c = color.New(color.Reset)
	}
	if t.colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	return c
}

var palette = map[step.Color]color.Attribute{
	step.ColorOrange:     color.FgYellow,
	step.ColorGray:       color.FgHiBlack,
	step.ColorRed:        color.FgRed,
	step.ColorGreen:      color.FgGreen,
	step.ColorLightGreen: color.FgHiGreen,
	step.ColorLightGray:  color.FgWhite,
	step.ColorLightBlue:  color.FgHiCyan,
	step.ColorBlack:      color.FgBlack,
	step.ColorBlue:       color.FgBlue,
	step.ColorPurple:     color.FgMagenta,
	step.ColorBrown:      color.FgHiRed,
}

func foreground(c step.Color) color.Attribute {
	if a, ok := palette[c]; ok {
		return a
	}

	return color.FgWhite
}

// background maps to the Bg attribute; ANSI backgrounds sit 10 above
// their foregrounds.
func background(c step.Color) color.Attribute {
	return foreground(c) + 10
}

func lineGlyph(dr, dc int) rune {
	adr, adc := abs(dr), abs(dc)
	switch {
	case adr*2 < adc:
		return '-'
	case adc*2 < adr:
		return '|'
	case (dr > 0) == (dc > 0):
		return '\\'
	default:
		return '/'
	}
}

// plotLine walks the Bresenham line from (r1,c1) to (r2,c2).
func plotLine(r1, c1, r2, c2 int, plot func(r, c int)) {
	dr, dc := abs(r2-r1), -abs(c2-c1)
	sr, sc := sign(r2-r1), sign(c2-c1)
	e := dr + dc
	for {
		plot(r1, c1)
		if r1 == r2 && c1 == c2 {
			return
		}
		e2 := 2 * e
		if e2 >= dc {
			e += dc
			r1 += sr
		}
		if e2 <= dr {
			e += dr
			c1 += sc
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// DrawMenu writes a numbered list of choices as its own frame.
func (t *Terminal) DrawMenu(title string, items []string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	bold := color.New(color.Bold)
	if t.colored {
		bold.EnableColor()
	} else {
		bold.DisableColor()
	}
	var sb strings.Builder
	sb.WriteString(bold.Sprint(title))
	sb.WriteString(t.eol)
	for i, it := range items {
		sb.WriteString("  ")
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString(". ")
		sb.WriteString(it)
		sb.WriteString(t.eol)
	}
	t.last = sb.String()
	if t.out == nil {
		return nil
	}
	frame := t.last
	if t.clear {
		frame = clearScreen + frame
	}
	_, err := io.WriteString(t.out, frame)

	return err
}
