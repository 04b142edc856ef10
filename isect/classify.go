package isect

import (
	"github.com/unixpickle/model3d/model2d"
	"github.com/unixpickle/model3d/model3d"
)

type featureKind uint8

const (
	vertexFeature featureKind = iota
	edgeFeature
	faceFeature
)

// A feature is a region of a triangle before it is known whether the
// triangle is T1 or T2.
type feature struct {
	kind  featureKind
	index int
}

func (f feature) region(t2 bool) TriangleRegion {
	switch f.kind {
	case vertexFeature:
		return VertexRegion(t2, f.index)
	case edgeFeature:
		return EdgeRegion(t2, f.index)
	default:
		return InteriorRegion(t2)
	}
}

// An isectSet accumulates unique intersection pairs in insertion order.
type isectSet struct {
	list []TriangleIsect
}

// add records a point given as a feature of triangle a and a feature of
// triangle b. If swapped is true, a is T2 and b is T1.
func (s *isectSet) add(a, b feature, swapped bool) {
	x := TriangleIsect{First: a.region(false), Second: b.region(true)}
	if swapped {
		x = TriangleIsect{First: b.region(false), Second: a.region(true)}
	}
	for _, y := range s.list {
		if y == x {
			return
		}
	}
	s.list = append(s.list, x)
}

// A planarTriangle caches the projection of a triangle onto a 2D plane.
type planarTriangle struct {
	coords      *[3]model3d.Coord3D
	axis        int
	proj        [3]model2d.Coord
	orientation Sign
}

func newPlanarTriangle(t *[3]model3d.Coord3D, axis int) *planarTriangle {
	res := &planarTriangle{coords: t, axis: axis}
	for i, c := range t {
		res.proj[i] = project(c, axis)
	}
	res.orientation = Orient2D(res.proj[0], res.proj[1], res.proj[2])
	if res.orientation == Zero {
		panic("degenerate triangle")
	}
	return res
}

// locate finds the region of the triangle containing c, assuming that c is in
// the plane of the triangle. Returns false if c is outside.
func (p *planarTriangle) locate(c model3d.Coord3D) (feature, bool) {
	for i, v := range p.coords {
		if v == c {
			return feature{kind: vertexFeature, index: i}, true
		}
	}
	pc := project(c, p.axis)
	var signs [3]Sign
	for i := range signs {
		signs[i] = p.orientation * Orient2D(p.proj[(i+1)%3], p.proj[(i+2)%3], pc)
		if signs[i] == Negative {
			return feature{}, false
		}
	}
	return featureFromEdgeSigns(signs)
}

// featureFromEdgeSigns determines the region of a point given the signs of
// the point relative to each edge, where a zero sign means the point is on
// the line through that edge. Signs must not disagree.
func featureFromEdgeSigns(signs [3]Sign) (feature, bool) {
	var numZero int
	var zeroIndex, nonZeroIndex int
	for i, s := range signs {
		if s == Zero {
			numZero++
			zeroIndex = i
		} else {
			nonZeroIndex = i
		}
	}
	switch numZero {
	case 0:
		return feature{kind: faceFeature}, true
	case 1:
		return feature{kind: edgeFeature, index: zeroIndex}, true
	case 2:
		// On the lines of two edges, which meet at the remaining vertex.
		return feature{kind: vertexFeature, index: nonZeroIndex}, true
	}
	return feature{}, false
}

// crossingFeature locates the point where segment uv crosses the plane of t,
// given that u and v are strictly on opposite sides of that plane.
func crossingFeature(u, v model3d.Coord3D, t *[3]model3d.Coord3D) (feature, bool) {
	var signs [3]Sign
	var hasPos, hasNeg bool
	for i := range signs {
		signs[i] = Orient3D(u, v, t[(i+1)%3], t[(i+2)%3])
		if signs[i] == Positive {
			hasPos = true
		} else if signs[i] == Negative {
			hasNeg = true
		}
	}
	if hasPos && hasNeg {
		return feature{}, false
	}
	return featureFromEdgeSigns(signs)
}
