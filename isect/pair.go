package isect

import "strings"

// A TriangleIsect is the symbolic location of one intersection point, given
// as a region on each of the two triangles.
//
// Results of TrianglesIntersections always store a T1 region in First and a
// T2 region in Second.
type TriangleIsect struct {
	First  TriangleRegion
	Second TriangleRegion
}

// Swap returns the same point as it would be reported if the triangles were
// passed in the opposite order.
func (t TriangleIsect) Swap() TriangleIsect {
	return TriangleIsect{First: t.Second.Swap(), Second: t.First.Swap()}
}

// String formats the pair as "(first,second)".
func (t TriangleIsect) String() string {
	return "(" + t.First.String() + "," + t.Second.String() + ")"
}

// Isects is a list of intersection points, used for debug formatting.
type Isects []TriangleIsect

// String formats every pair followed by a space.
func (i Isects) String() string {
	var b strings.Builder
	for _, x := range i {
		b.WriteString(x.String())
		b.WriteByte(' ')
	}
	return b.String()
}

// Swap applies TriangleIsect.Swap to every element.
func (i Isects) Swap() Isects {
	res := make(Isects, len(i))
	for j, x := range i {
		res[j] = x.Swap()
	}
	return res
}
