package gcurve

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Save writes the spline in its text format: the number of segments on the
// first line, followed by one line per segment holding the duration and the
// four control points, separated by tabs. The components of a control point
// are separated by spaces.
//
// A spline without durations is saved with durations of 1/n, which maps
// parameters identically.
func (s Spline) Save(w io.Writer) error {
	s.checkDurations()
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, len(s.Segments))
	for i, c := range s.Segments {
		d := 1.0 / float64(len(s.Segments))
		if len(s.Durations) != 0 {
			d = s.Durations[i]
		}
		bw.WriteString(formatFloat(d))
		for _, pt := range [...]Vector{c.X0, c.X1, c.X2, c.X3} {
			bw.WriteByte('\t')
			writeVector(bw, pt)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func writeVector(w *bufio.Writer, v Vector) {
	for i, x := range v {
		if i > 0 {
			w.WriteByte(' ')
		}
		w.WriteString(formatFloat(x))
	}
}

// Load replaces the spline's segments and durations with those read from r
// in the format written by [Spline.Save]. The dimension of the control
// points is implied by the number of fields on each segment line and must be
// the same for all segments.
//
// Errors wrap [ErrMalformed] unless reading from r fails. The spline's
// contents are unspecified after an error. Loaded segments have no operators;
// use [Spline.Bind] to attach them.
func (s *Spline) Load(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, 1<<24)
	nextLine := func() (string, bool) {
		for sc.Scan() {
			if line := strings.TrimSpace(sc.Text()); line != "" {
				return line, true
			}
		}
		return "", false
	}

	line, ok := nextLine()
	if !ok {
		return readError(sc.Err(), "missing segment count")
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return fmt.Errorf("gcurve: segment count: %w: %w", ErrMalformed, err)
	}
	if n < 0 {
		return fmt.Errorf("gcurve: negative segment count %d: %w", n, ErrMalformed)
	}

	// The count is untrusted; storage grows with the lines actually read.
	s.Segments = make([]Curve, 0, min(n, 1024))
	s.Durations = make([]float64, 0, min(n, 1024))
	dim := -1
	for i := range n {
		line, ok := nextLine()
		if !ok {
			return readError(sc.Err(), fmt.Sprintf("expected %d segments, got %d", n, i))
		}
		fields := strings.Fields(line)
		if len(fields) < 5 || (len(fields)-1)%4 != 0 {
			return fmt.Errorf("gcurve: segment %d: %d fields is not a duration and four points: %w", i, len(fields), ErrMalformed)
		}
		nums := make([]float64, len(fields))
		for j, f := range fields {
			x, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return fmt.Errorf("gcurve: segment %d: %w: %w", i, ErrMalformed, err)
			}
			nums[j] = x
		}
		d := (len(fields) - 1) / 4
		if dim == -1 {
			dim = d
		} else if d != dim {
			return fmt.Errorf("gcurve: segment %d has dimension %d, want %d: %w", i, d, dim, ErrMalformed)
		}

		pts := nums[1:]
		s.Durations = append(s.Durations, nums[0])
		s.Segments = append(s.Segments, Curve{
			X0: Vector(pts[0*d : 1*d : 1*d]),
			X1: Vector(pts[1*d : 2*d : 2*d]),
			X2: Vector(pts[2*d : 3*d : 3*d]),
			X3: Vector(pts[3*d : 4*d : 4*d]),
		})
	}
	return nil
}

func readError(err error, msg string) error {
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("gcurve: reading spline: %w", err)
	}
	return fmt.Errorf("gcurve: %s: %w", msg, ErrMalformed)
}
