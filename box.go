package gcurve

import "fmt"

// Box is an axis-aligned box in n dimensions.
type Box struct {
	Min Vector
	Max Vector
}

// NewBoxFromPoints returns the smallest box containing all of pts. It returns
// the zero Box if pts is empty.
func NewBoxFromPoints(pts ...Vector) Box {
	if len(pts) == 0 {
		return Box{}
	}
	b := Box{Min: pts[0].Clone(), Max: pts[0].Clone()}
	for _, pt := range pts[1:] {
		b = b.UnionPoint(pt)
	}
	return b
}

// IsEmpty reports whether the box has no dimension.
func (b Box) IsEmpty() bool {
	return b.Min.IsEmpty()
}

func (b Box) String() string {
	return fmt.Sprintf("[%s, %s]", b.Min, b.Max)
}

// Size returns Max − Min.
func (b Box) Size() Vector {
	return b.Max.Sub(b.Min)
}

// UnionPoint returns the smallest box containing b and pt.
func (b Box) UnionPoint(pt Vector) Box {
	if b.IsEmpty() {
		return Box{Min: pt.Clone(), Max: pt.Clone()}
	}
	mustMatch(b.Min, pt)
	out := Box{Min: b.Min.Clone(), Max: b.Max.Clone()}
	for i, x := range pt {
		out.Min[i] = min(out.Min[i], x)
		out.Max[i] = max(out.Max[i], x)
	}
	return out
}

// Union returns the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	if o.IsEmpty() {
		return b
	}
	return b.UnionPoint(o.Min).UnionPoint(o.Max)
}

// Contains reports whether pt lies within the box, allowing a slack of eps
// in every component.
func (b Box) Contains(pt Vector, eps float64) bool {
	if len(pt) != len(b.Min) {
		return false
	}
	for i, x := range pt {
		if x < b.Min[i]-eps || x > b.Max[i]+eps {
			return false
		}
	}
	return true
}
