package circuit

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type strokeCall struct {
	x0, y0, x1, y1 float64
	alpha, glow    float64
}

// recordingCanvas captures draw calls.
type recordingCanvas struct {
	fades   []float64
	strokes []strokeCall
	nodes   int
}

func (c *recordingCanvas) Fade(alpha float64) { c.fades = append(c.fades, alpha) }

func (c *recordingCanvas) StrokeLine(x0, y0, x1, y1 float64, _ RGB, alpha, glow, _ float64) {
	c.strokes = append(c.strokes, strokeCall{x0, y0, x1, y1, alpha, glow})
}

func (c *recordingCanvas) FillNode(_, _, _ float64, _ RGB, _ float64) { c.nodes++ }

// fixedRand returns the same value forever.
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

func seeded(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestNewField_Ranges(t *testing.T) {
	f := NewField(800, 600, seeded(1))
	lines := f.Lines()
	require.Len(t, lines, LineCount)
	for _, l := range lines {
		assert.GreaterOrEqual(t, l.X, 0.0)
		assert.Less(t, l.X, 800.0)
		assert.GreaterOrEqual(t, l.Y, 0.0)
		assert.Less(t, l.Y, 600.0)
		assert.GreaterOrEqual(t, l.Length, 50.0)
		assert.Less(t, l.Length, 200.0)
		assert.GreaterOrEqual(t, l.Speed, 0.1)
		assert.Less(t, l.Speed, 0.4)
		assert.GreaterOrEqual(t, l.Opacity, 0.1)
		assert.Less(t, l.Opacity, 0.6)
		assert.GreaterOrEqual(t, l.Glow, 0.5)
		assert.Less(t, l.Glow, 1.0)
	}
}

func TestField_WrapInvariant(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3, 42} {
		// A narrow surface forces many wraps within a few thousand frames.
		f := NewField(30, 20, seeded(seed))
		for n := 0; n <= 3000; n++ {
			for _, l := range f.Lines() {
				bound := f.height
				if l.Horizontal {
					bound = f.width
				}
				require.GreaterOrEqual(t, l.Pos(), -l.Length, "seed %d frame %d", seed, n)
				require.Less(t, l.Pos(), bound, "seed %d frame %d", seed, n)
			}
			f.Frame(nil)
		}
		assert.Equal(t, uint64(3001), f.Frames())
	}
}

func TestField_WrapResetsToNegativeLength(t *testing.T) {
	f := &Field{width: 100, height: 100, rng: fixedRand(0.25)}
	f.lines = []Line{
		{X: 99.9, Y: 10, Length: 60, Horizontal: true, Speed: 0.2},
		{X: 10, Y: 99.95, Length: 80, Horizontal: false, Speed: 0.1},
	}
	f.Frame(nil)

	lines := f.Lines()
	assert.Equal(t, -60.0, lines[0].X)
	assert.Equal(t, 25.0, lines[0].Y)
	assert.Equal(t, -80.0, lines[1].Y)
	assert.Equal(t, 25.0, lines[1].X)
}

func TestField_ResizeKeepsLines(t *testing.T) {
	f := NewField(1000, 1000, seeded(7))
	before := f.Lines()
	f.Resize(10, 10)
	assert.Equal(t, before, f.Lines())

	w, h := f.Size()
	assert.Equal(t, 10.0, w)
	assert.Equal(t, 10.0, h)

	f.Frame(nil)
	for _, l := range f.Lines() {
		assert.Less(t, l.Pos(), 10.0)
		assert.GreaterOrEqual(t, l.Pos(), -l.Length)
	}
}

func TestField_FrameDraws(t *testing.T) {
	f := &Field{width: 500, height: 500, rng: fixedRand(0.995)}
	f.lines = []Line{
		{X: 10, Y: 20, Length: 50, Horizontal: true, Speed: 0.5, Opacity: 0.4, Glow: 0.7},
		{X: 30, Y: 40, Length: 70, Horizontal: false, Speed: 0.25, Opacity: 0.6, Glow: 0.9},
	}
	c := &recordingCanvas{}
	f.Frame(c)

	assert.Equal(t, []float64{FadeAlpha}, c.fades)
	require.Len(t, c.strokes, 2)
	assert.Equal(t, strokeCall{10, 20, 60, 20, 0.4, 0.7}, c.strokes[0])
	assert.Equal(t, strokeCall{30, 40, 30, 110, 0.6, 0.9}, c.strokes[1])
	// 0.995 clears the node threshold for both lines.
	assert.Equal(t, 2, c.nodes)

	lines := f.Lines()
	assert.Equal(t, 10.5, lines[0].X)
	assert.Equal(t, 40.25, lines[1].Y)
}

func TestField_NoNodesBelowThreshold(t *testing.T) {
	f := &Field{width: 500, height: 500, rng: fixedRand(0.5)}
	f.lines = []Line{{X: 1, Y: 1, Length: 50, Horizontal: true, Speed: 0.1}}
	c := &recordingCanvas{}
	for i := 0; i < 100; i++ {
		f.Frame(c)
	}
	assert.Zero(t, c.nodes)
	assert.Len(t, c.fades, 100)
}

func TestField_Stats(t *testing.T) {
	f := NewField(640, 480, seeded(9))
	for i := 0; i < 500; i++ {
		f.Frame(nil)
	}
	s, err := f.Stats()
	require.NoError(t, err)
	assert.Equal(t, uint64(500), s.Frames)
	assert.Equal(t, LineCount, s.Horizontal+s.Vertical)
	assert.GreaterOrEqual(t, s.MinPos, -200.0)
	assert.Less(t, s.MaxPos, 640.0)
	assert.InDelta(t, 0.25, s.MeanSpeed, 0.15)
	assert.InDelta(t, 125, s.MeanLength, 75)
}
