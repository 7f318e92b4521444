package step_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/step"
)

func TestRecorder_SequenceIsFrozen(t *testing.T) {
	r := step.NewRecorder(4)
	r.Visit("A", step.ColorOrange)
	r.Explore("A", "B", step.ColorRed)
	seq := r.Sequence()

	r.Finish()
	assert.Equal(t, 2, seq.Len())
	assert.Equal(t, 3, r.Len())

	steps := seq.Slice()
	steps[0].Vertex = "Z"
	first, err := seq.At(0)
	require.NoError(t, err)
	assert.Equal(t, "A", first.Vertex)
}

func TestSequence_At(t *testing.T) {
	seq := step.NewSequence(step.Step{Kind: step.KindFinish})

	_, err := seq.At(0)
	assert.NoError(t, err)
	for _, i := range []int{-1, 1, 10} {
		_, err = seq.At(i)
		assert.ErrorIs(t, err, step.ErrIndexOutOfRange, "index %d", i)
	}

	var empty step.Sequence
	assert.Equal(t, -1, empty.Last())
	_, err = empty.At(0)
	assert.ErrorIs(t, err, step.ErrIndexOutOfRange)
}

func TestSequence_Iterators(t *testing.T) {
	r := step.NewRecorder(0)
	for _, v := range []string{"A", "B", "C", "D"} {
		r.Visit(v, step.ColorOrange)
	}
	seq := r.Sequence()

	var got []string
	for _, st := range seq.Prefix(1) {
		got = append(got, st.Vertex)
	}
	assert.Equal(t, []string{"A", "B"}, got)

	got = got[:0]
	for i, st := range seq.Range(2, 99) {
		assert.GreaterOrEqual(t, i, 2)
		got = append(got, st.Vertex)
	}
	assert.Equal(t, []string{"C", "D"}, got)

	n := 0
	for range seq.All() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
	assert.Equal(t, 4, seq.Count(step.KindVisit))
}

func TestSequence_Equal(t *testing.T) {
	a := step.NewSequence(step.Step{Kind: step.KindVisit, Vertex: "A"})
	b := step.NewSequence(step.Step{Kind: step.KindVisit, Vertex: "A"})
	c := step.NewSequence(step.Step{Kind: step.KindVisit, Vertex: "B"})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(step.Sequence{}))
}

func TestKind_Text(t *testing.T) {
	b, err := json.Marshal(step.Step{Kind: step.KindUpdateDistance, Vertex: "B", Distance: 4, Parent: "A"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"update_distance","vertex":"B","distance":4,"parent":"A"}`, string(b))

	var back step.Step
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, step.KindUpdateDistance, back.Kind)
	assert.True(t, back.HasParent())

	var k step.Kind
	assert.ErrorIs(t, k.UnmarshalText([]byte("jump")), step.ErrUnknownKind)
	_, err = step.Kind(99).MarshalText()
	assert.ErrorIs(t, err, step.ErrUnknownKind)
}

func TestStep_String(t *testing.T) {
	cases := map[string]step.Step{
		"finish":                      {Kind: step.KindFinish},
		"visit A orange":              {Kind: step.KindVisit, Vertex: "A", Color: step.ColorOrange},
		"explore A→B red":             {Kind: step.KindExplore, From: "A", To: "B", Color: step.ColorRed},
		"test_edge B→C":               {Kind: step.KindTestEdge, From: "B", To: "C"},
		"update_distance A=0":         {Kind: step.KindUpdateDistance, Vertex: "A"},
		"update_distance C=2.5 via A": {Kind: step.KindUpdateDistance, Vertex: "C", Distance: 2.5, Parent: "A"},
		"add_node_to_mst D":           {Kind: step.KindAddNodeToMST, Vertex: "D"},
	}
	for want, st := range cases {
		assert.Equal(t, want, st.String())
	}
}
