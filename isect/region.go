package isect

import "fmt"

// A TriangleRegion encodes the location of a point within one of the two
// triangles of an intersection query.
//
// Each triangle has seven regions: three vertices (P0, P1, P2), three edges
// (E0, E1, E2) and the interior (T). Edge i is opposite vertex i, so it joins
// vertices (i+1)%3 and (i+2)%3.
type TriangleRegion uint8

const (
	T1RgnP0 TriangleRegion = iota
	T1RgnP1
	T1RgnP2

	T2RgnP0
	T2RgnP1
	T2RgnP2

	T1RgnE0
	T1RgnE1
	T1RgnE2

	T2RgnE0
	T2RgnE1
	T2RgnE2

	T1RgnT
	T2RgnT

	NumRegions
)

var regionNames = [NumRegions]string{
	"T1_RGN_P0",
	"T1_RGN_P1",
	"T1_RGN_P2",
	"T2_RGN_P0",
	"T2_RGN_P1",
	"T2_RGN_P2",
	"T1_RGN_E0",
	"T1_RGN_E1",
	"T1_RGN_E2",
	"T2_RGN_E0",
	"T2_RGN_E1",
	"T2_RGN_E2",
	"T1_RGN_T",
	"T2_RGN_T",
}

// VertexRegion returns the region for vertex i of T1, or of T2 if t2 is set.
func VertexRegion(t2 bool, i int) TriangleRegion {
	if t2 {
		return T2RgnP0 + TriangleRegion(i)
	}
	return T1RgnP0 + TriangleRegion(i)
}

// EdgeRegion returns the region for edge i (opposite vertex i) of T1, or of
// T2 if t2 is set.
func EdgeRegion(t2 bool, i int) TriangleRegion {
	if t2 {
		return T2RgnE0 + TriangleRegion(i)
	}
	return T1RgnE0 + TriangleRegion(i)
}

// InteriorRegion returns the interior region of T1, or of T2 if t2 is set.
func InteriorRegion(t2 bool) TriangleRegion {
	if t2 {
		return T2RgnT
	}
	return T1RgnT
}

// Valid checks if r is one of the NumRegions codes.
func (r TriangleRegion) Valid() bool {
	return r < NumRegions
}

// String returns the canonical name of r, such as "T2_RGN_E1".
func (r TriangleRegion) String() string {
	if !r.Valid() {
		return fmt.Sprintf("TriangleRegion(%d)", uint8(r))
	}
	return regionNames[r]
}

// Dim returns the dimension of the region: 0 for vertices, 1 for edges and
// 2 for interiors.
func (r TriangleRegion) Dim() int {
	switch {
	case r <= T2RgnP2:
		return 0
	case r <= T2RgnE2:
		return 1
	case r <= T2RgnT:
		return 2
	}
	panic("invalid triangle region")
}

// InT1 checks if r refers to the first triangle.
func (r TriangleRegion) InT1() bool {
	switch r {
	case T1RgnP0, T1RgnP1, T1RgnP2, T1RgnE0, T1RgnE1, T1RgnE2, T1RgnT:
		return true
	case T2RgnP0, T2RgnP1, T2RgnP2, T2RgnE0, T2RgnE1, T2RgnE2, T2RgnT:
		return false
	}
	panic("invalid triangle region")
}

// Index returns the vertex or edge index of r, or 0 for interiors.
func (r TriangleRegion) Index() int {
	switch r.Dim() {
	case 0:
		return int(r) % 3
	case 1:
		return int(r-T1RgnE0) % 3
	default:
		return 0
	}
}

// Swap returns the same region on the other triangle.
func (r TriangleRegion) Swap() TriangleRegion {
	t2 := r.InT1()
	switch r.Dim() {
	case 0:
		return VertexRegion(t2, r.Index())
	case 1:
		return EdgeRegion(t2, r.Index())
	default:
		return InteriorRegion(t2)
	}
}

// RegionsConvexHull returns the smallest region that contains both r1 and
// r2. Both regions must belong to the same triangle.
func RegionsConvexHull(r1, r2 TriangleRegion) TriangleRegion {
	if r1.InT1() != r2.InT1() {
		panic("regions belong to different triangles")
	}
	if r1 == r2 {
		return r1
	}
	t2 := !r1.InT1()
	if r1.Dim() > r2.Dim() {
		r1, r2 = r2, r1
	}
	switch {
	case r1.Dim() == 0 && r2.Dim() == 0:
		// Two distinct vertices span the edge opposite the third one.
		return EdgeRegion(t2, 3-r1.Index()-r2.Index())
	case r1.Dim() == 0 && r2.Dim() == 1:
		if r1.Index() != r2.Index() {
			return r2
		}
	}
	return InteriorRegion(t2)
}
