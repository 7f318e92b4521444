package canvas

import (
	"bytes"
	"html/template"
	"io"
	"math"
	"strconv"
	"sync"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/replay"
	"github.com/katalvlaran/algoviz/step"
)

// Layout constants of the SVG frame, in user units.
const (
	svgNodeRadius = 20
	svgMargin     = 60
	svgHeader     = 40
	svgLineHeight = 18
	svgEdgeWidth  = 2
	svgHotWidth   = 4
)

// Default colours for unstyled shapes.
const (
	svgNodeFill   = "white"
	svgEdgeStroke = "#999999"
)

// SVGOption configures an SVG drawer.
type SVGOption func(*SVG)

// WithSVGOutput makes Flush write every frame to w.
func WithSVGOutput(w io.Writer) SVGOption {
	return func(s *SVG) { s.out = w }
}

// SVG is a replay.Drawer producing SVG markup.
type SVG struct {
	mu  sync.Mutex
	out io.Writer

	diagram replay.Diagram
	fills   []step.Color
	strokes []step.Color
	labels  []string
	info    []string
	title   string

	last []byte
}

// NewSVG returns an empty SVG drawer.
func NewSVG(opts ...SVGOption) *SVG {
	s := &SVG{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// DrawBase implements replay.Drawer. Handles are slice indexes.
func (s *SVG) DrawBase(d replay.Diagram) replay.Handles {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.diagram = d
	s.fills = make([]step.Color, len(d.Nodes))
	s.strokes = make([]step.Color, len(d.Edges))
	s.labels = make([]string, len(d.Nodes))
	s.info = nil
	s.title = ""

	return indexHandles(d)
}

// FillNode implements replay.Drawer.
func (s *SVG) FillNode(h replay.Handle, c step.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if int(h) < len(s.fills) {
		s.fills[h] = c
	}
}

// StrokeEdge implements replay.Drawer.
func (s *SVG) StrokeEdge(h replay.Handle, c step.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if int(h) < len(s.strokes) {
		s.strokes[h] = c
	}
}

// LabelNode implements replay.Drawer.
func (s *SVG) LabelNode(h replay.Handle, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if int(h) < len(s.labels) {
		s.labels[h] = text
	}
}

// SetInfo implements replay.Drawer.
func (s *SVG) SetInfo(lines []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.info = append([]string(nil), lines...)
}

// SetTitle implements replay.Drawer.
func (s *SVG) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.title = title
}

// Flush renders the pending frame, keeps it for Bytes and writes it to the
// configured output.
func (s *SVG) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.render()
	if err != nil {
		return err
	}
	s.last = b
	if s.out != nil {
		_, err = s.out.Write(b)
	}

	return err
}

// Bytes returns the most recently flushed frame.
func (s *SVG) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	return bytes.Clone(s.last)
}

type svgNode struct {
	ID, Label, Fill string
	X, Y            float64
}

type svgEdge struct {
	X1, Y1, X2, Y2 float64
	Stroke         string
	Width          int
	Weight         string
	WX, WY         float64
}

type svgInfo struct {
	Text string
	Y    float64
}

type svgFrame struct {
	Width, Height float64
	Radius        int
	Title         string
	Nodes         []svgNode
	Edges         []svgEdge
	Info          []svgInfo
}

func (s *SVG) render() ([]byte, error) {
	// 1. Bounds of the diagram
	var maxX, maxY float64
	for _, n := range s.diagram.Nodes {
		maxX = math.Max(maxX, n.Pos.X)
		maxY = math.Max(maxY, n.Pos.Y)
	}
	f := svgFrame{
		Width:  maxX + svgMargin,
		Height: svgHeader + maxY + svgMargin + float64(len(s.info))*svgLineHeight,
		Radius: svgNodeRadius,
		Title:  s.title,
	}

	// 2. Edges below nodes
	for i, e := range s.diagram.Edges {
		se := svgEdge{
			X1: e.From.X, Y1: e.From.Y + svgHeader,
			X2: e.To.X, Y2: e.To.Y + svgHeader,
			Stroke: svgEdgeStroke,
			Width:  svgEdgeWidth,
		}
		if c := s.strokes[i]; c != step.ColorNone {
			se.Stroke = string(c)
			se.Width = svgHotWidth
		}
		if e.Weighted {
			se.Weight = formatWeight(e.Weight)
			se.WX = (se.X1 + se.X2) / 2
			se.WY = (se.Y1+se.Y2)/2 - 6
		}
		f.Edges = append(f.Edges, se)
	}
	for i, n := range s.diagram.Nodes {
		sn := svgNode{ID: n.ID, Label: s.labels[i], Fill: svgNodeFill, X: n.Pos.X, Y: n.Pos.Y + svgHeader}
		if c := s.fills[i]; c != step.ColorNone {
			sn.Fill = string(c)
		}
		f.Nodes = append(f.Nodes, sn)
	}

	// 3. Info block under the drawing
	y := svgHeader + maxY + svgMargin
	for _, line := range s.info {
		f.Info = append(f.Info, svgInfo{Text: line, Y: y})
		y += svgLineHeight
	}

	var buf bytes.Buffer
	if err := svgTemplate.Execute(&buf, f); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

// indexHandles numbers nodes and edges in diagram order.
func indexHandles(d replay.Diagram) replay.Handles {
	h := replay.Handles{
		Nodes: make(map[string]replay.Handle, len(d.Nodes)),
		Texts: make(map[string]replay.Handle, len(d.Nodes)),
		Edges: make(map[core.EdgeKey]replay.Handle, len(d.Edges)),
	}
	for i, n := range d.Nodes {
		h.Nodes[n.ID] = replay.Handle(i)
		h.Texts[n.ID] = replay.Handle(i)
	}
	for i, e := range d.Edges {
		h.Edges[e.Key] = replay.Handle(i)
	}

	return h
}

var svgTemplate = template.Must(template.New("frame").Funcs(template.FuncMap{
	"num": func(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) },
}).Parse(`<svg xmlns="http://www.w3.org/2000/svg" width="{{num .Width}}" height="{{num .Height}}" viewBox="0 0 {{num .Width}} {{num .Height}}" font-family="sans-serif">
<rect width="100%" height="100%" fill="white"/>
<text x="10" y="24" font-size="16">{{.Title}}</text>
{{- range .Edges}}
<line x1="{{num .X1}}" y1="{{num .Y1}}" x2="{{num .X2}}" y2="{{num .Y2}}" stroke="{{.Stroke}}" stroke-width="{{.Width}}"/>
{{- if .Weight}}
<text x="{{num .WX}}" y="{{num .WY}}" font-size="12" text-anchor="middle" fill="#444444">{{.Weight}}</text>
{{- end}}
{{- end}}
{{- range .Nodes}}
<circle cx="{{num .X}}" cy="{{num .Y}}" r="{{$.Radius}}" fill="{{.Fill}}" stroke="black"/>
<text x="{{num .X}}" y="{{num .Y}}" font-size="14" text-anchor="middle" dominant-baseline="central">{{.ID}}</text>
{{- if .Label}}
<text x="{{num .X}}" y="{{num .Y}}" dy="32" font-size="12" text-anchor="middle">{{.Label}}</text>
{{- end}}
{{- end}}
{{- range .Info}}
<text x="10" y="{{num .Y}}" font-size="13">{{.Text}}</text>
{{- end}}
</svg>
`))
