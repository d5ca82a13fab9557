package gcurve

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	_ yaml.Marshaler   = Spline{}
	_ yaml.Unmarshaler = (*Spline)(nil)
)

type yamlSegment struct {
	Duration float64     `yaml:"duration"`
	Points   [][]float64 `yaml:"points,flow"`
}

type yamlSpline struct {
	Segments []yamlSegment `yaml:"segments"`
}

// MarshalYAML implements yaml.Marshaler. Durations are written the same way
// as by [Spline.Save].
func (s Spline) MarshalYAML() (any, error) {
	s.checkDurations()
	out := yamlSpline{Segments: make([]yamlSegment, len(s.Segments))}
	for i, c := range s.Segments {
		d := 1.0 / float64(len(s.Segments))
		if len(s.Durations) != 0 {
			d = s.Durations[i]
		}
		out.Segments[i] = yamlSegment{
			Duration: d,
			Points:   [][]float64{c.X0, c.X1, c.X2, c.X3},
		}
	}
	return out, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Like [Spline.Load], decoded
// segments have no operators and errors wrap [ErrMalformed].
func (s *Spline) UnmarshalYAML(node *yaml.Node) error {
	var in yamlSpline
	if err := node.Decode(&in); err != nil {
		return fmt.Errorf("gcurve: %w: %w", ErrMalformed, err)
	}
	segments := make([]Curve, len(in.Segments))
	durations := make([]float64, len(in.Segments))
	dim := -1
	for i, seg := range in.Segments {
		if len(seg.Points) != 4 {
			return fmt.Errorf("gcurve: segment %d has %d points, want 4: %w", i, len(seg.Points), ErrMalformed)
		}
		for _, pt := range seg.Points {
			if dim == -1 {
				dim = len(pt)
			}
			if len(pt) == 0 || len(pt) != dim {
				return fmt.Errorf("gcurve: segment %d has a point of dimension %d, want %d: %w", i, len(pt), dim, ErrMalformed)
			}
		}
		durations[i] = seg.Duration
		segments[i] = Curve{
			X0: Vector(seg.Points[0]),
			X1: Vector(seg.Points[1]),
			X2: Vector(seg.Points[2]),
			X3: Vector(seg.Points[3]),
		}
	}
	s.Segments = segments
	s.Durations = durations
	return nil
}
