package step

// Recorder is the append-only buffer an algorithm writes into while it runs.
// It is not safe for concurrent use; each run owns its own Recorder.
type Recorder struct {
	steps []Step
}

// NewRecorder returns a Recorder with room for sizeHint steps.
func NewRecorder(sizeHint int) *Recorder {
	if sizeHint < 0 {
		sizeHint = 0
	}

	return &Recorder{steps: make([]Step, 0, sizeHint)}
}

// Len returns the number of steps recorded so far.
func (r *Recorder) Len() int { return len(r.steps) }

// Append records s verbatim.
func (r *Recorder) Append(s Step) { r.steps = append(r.steps, s) }

// Visit records visit(v, c).
func (r *Recorder) Visit(v string, c Color) {
	r.Append(Step{Kind: KindVisit, Vertex: v, Color: c})
}

// Process records process(v, c).
func (r *Recorder) Process(v string, c Color) {
	r.Append(Step{Kind: KindProcess, Vertex: v, Color: c})
}

// Explore records explore(from→to, c).
func (r *Recorder) Explore(from, to string, c Color) {
	r.Append(Step{Kind: KindExplore, From: from, To: to, Color: c})
}

// UpdateDistance records update_distance(v, d, parent). An empty parent
// means the vertex has no predecessor.
func (r *Recorder) UpdateDistance(v string, d float64, parent string) {
	r.Append(Step{Kind: KindUpdateDistance, Vertex: v, Distance: d, Parent: parent})
}

// TestEdge records test_edge(from, to).
func (r *Recorder) TestEdge(from, to string) {
	r.Append(Step{Kind: KindTestEdge, From: from, To: to})
}

// AddEdgeToMST records add_edge_to_mst(from, to).
func (r *Recorder) AddEdgeToMST(from, to string) {
	r.Append(Step{Kind: KindAddEdgeToMST, From: from, To: to})
}

// AddNodeToMST records add_node_to_mst(v).
func (r *Recorder) AddNodeToMST(v string) {
	r.Append(Step{Kind: KindAddNodeToMST, Vertex: v})
}

// DiscardEdge records discard_edge(from, to).
func (r *Recorder) DiscardEdge(from, to string) {
	r.Append(Step{Kind: KindDiscardEdge, From: from, To: to})
}

// ExploreEdge records explore_edge(from, to).
func (r *Recorder) ExploreEdge(from, to string) {
	r.Append(Step{Kind: KindExploreEdge, From: from, To: to})
}

// Finish records the finish sentinel.
func (r *Recorder) Finish() { r.Append(Step{Kind: KindFinish}) }

// Sequence freezes everything recorded so far. Later appends do not affect
// the returned Sequence.
func (r *Recorder) Sequence() Sequence {
	return NewSequence(r.steps...)
}
