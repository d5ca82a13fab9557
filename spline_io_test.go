package gcurve

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func twoSegmentSpline() Spline {
	return Spline{
		Segments: []Curve{
			{X0: Vec(0, 0), X1: Vec(1, 2), X2: Vec(3, 2), X3: Vec(4, 0)},
			{X0: Vec(4, 0), X1: Vec(5, -2), X2: Vec(6, -1.5), X3: Vec(7, 0)},
		},
		Durations: []float64{0.5, 1.25},
	}
}

func TestSplineSave(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, twoSegmentSpline().Save(&buf))
	const want = "2\n" +
		"0.5\t0 0\t1 2\t3 2\t4 0\n" +
		"1.25\t4 0\t5 -2\t6 -1.5\t7 0\n"
	assert.Equal(t, want, buf.String())

	// Without durations, every segment gets an equal share of [0, 1].
	s := twoSegmentSpline()
	s.Durations = nil
	buf.Reset()
	require.NoError(t, s.Save(&buf))
	assert.True(t, strings.HasPrefix(buf.String(), "2\n0.5\t"), "got %q", buf.String())
}

func TestSplineRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(14, 1))
	for _, dim := range []int{1, 3, 7} {
		s := randomSpline(rng, 3, dim)

		var buf bytes.Buffer
		require.NoError(t, s.Save(&buf))
		var got Spline
		require.NoError(t, got.Load(&buf))
		diff(t, s, got)
	}

	// Loading replaces previous contents.
	got := twoSegmentSpline()
	require.NoError(t, got.Load(strings.NewReader("0\n")))
	assert.Empty(t, got.Segments)
	assert.Empty(t, got.Durations)
}

func TestSplineLoadWhitespace(t *testing.T) {
	const in = "\n  2\r\n\n" +
		"0.5   0 0\t 1 2  3 2 4 0\r\n" +
		"\n" +
		"1.25 4 0 5 -2 6 -1.5 7 0"
	var got Spline
	require.NoError(t, got.Load(strings.NewReader(in)))
	diff(t, twoSegmentSpline(), got)
}

func TestSplineLoadMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"blank", "\n\n"},
		{"bad count", "two\n"},
		{"negative count", "-1\n"},
		{"missing segment", "2\n1\t0\t1\t2\t3\n"},
		{"huge count", "9223372036854775807\n1\t0\t1\t2\t3\n"},
		{"too few fields", "1\n1\t0\t1\t2\n"},
		{"uneven fields", "1\n1 0 1 2 3 4\n"},
		{"not a number", "1\n1\t0\tx\t2\t3\n"},
		{"bad duration", "1\nfast\t0\t1\t2\t3\n"},
		{"dimension mismatch", "2\n1\t0\t1\t2\t3\n1\t0 0\t1 1\t2 2\t3 3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Spline
			err := s.Load(strings.NewReader(tt.in))
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestSplineLoadReadError(t *testing.T) {
	boom := errors.New("boom")
	var s Spline
	err := s.Load(iotest.ErrReader(boom))
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrMalformed)
}

func TestSplineYAML(t *testing.T) {
	s := twoSegmentSpline()
	data, err := yaml.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), "duration: 1.25")

	var got Spline
	require.NoError(t, yaml.Unmarshal(data, &got))
	diff(t, s, got)

	rng := rand.New(rand.NewPCG(15, 1))
	s = randomSpline(rng, 4, 3)
	data, err = yaml.Marshal(s)
	require.NoError(t, err)
	got = Spline{}
	require.NoError(t, yaml.Unmarshal(data, &got))
	diff(t, s, got)

	// Documents embedding a spline decode it in place.
	var doc struct {
		Name string `yaml:"name"`
		Path Spline `yaml:"path"`
	}
	const in = `
name: probe
path:
  segments:
    - duration: 2
      points: [[0, 0], [1, 1], [2, 1], [3, 0]]
`
	require.NoError(t, yaml.Unmarshal([]byte(in), &doc))
	assert.Equal(t, "probe", doc.Name)
	diff(t, Spline{
		Segments:  []Curve{{X0: Vec(0, 0), X1: Vec(1, 1), X2: Vec(2, 1), X3: Vec(3, 0)}},
		Durations: []float64{2},
	}, doc.Path)
}

func TestSplineYAMLMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"not a mapping", "segments: 3\n"},
		{"three points", "segments:\n  - duration: 1\n    points: [[0], [1], [2]]\n"},
		{"dimension mismatch", "segments:\n  - duration: 1\n    points: [[0], [1, 2], [2], [3]]\n"},
		{"empty point", "segments:\n  - duration: 1\n    points: [[], [], [], []]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Spline
			err := yaml.Unmarshal([]byte(tt.in), &s)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}
