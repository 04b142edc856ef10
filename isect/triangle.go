package isect

import (
	"github.com/unixpickle/model3d/model2d"
	"github.com/unixpickle/model3d/model3d"
)

// TrianglesIntersections computes the intersection of triangles p0p1p2 (T1)
// and q0q1q2 (T2) in symbolic form.
//
// Each element of the result is the location of one intersection point on
// T1 (First) and on T2 (Second). A transversal crossing yields the two
// endpoints of the intersection segment. An overlap of coplanar triangles
// yields the vertices of the overlap polygon (up to six), in no particular
// order; see OrderedPolygon for a cyclic ordering.
//
// The triangles must not be degenerate.
//
// Returns false if the triangles do not intersect, or if they share one or
// more vertices: one vertex in common, one edge in common, or duplicated
// triangles are not reported as intersections.
func TrianglesIntersections(p0, p1, p2, q0, q1, q2 model3d.Coord3D) ([]TriangleIsect, bool) {
	for _, p := range [3]model3d.Coord3D{p0, p1, p2} {
		for _, q := range [3]model3d.Coord3D{q0, q1, q2} {
			if p == q {
				return nil, false
			}
		}
	}
	res := SymbolicIntersections(p0, p1, p2, q0, q1, q2)
	return res, len(res) > 0
}

// TrianglesIntersect is like TrianglesIntersections, but only reports if an
// intersection was found.
func TrianglesIntersect(p0, p1, p2, q0, q1, q2 model3d.Coord3D) bool {
	_, ok := TrianglesIntersections(p0, p1, p2, q0, q1, q2)
	return ok
}

// TriangleIntersections is like TrianglesIntersections for model3d triangles.
func TriangleIntersections(t1, t2 *model3d.Triangle) ([]TriangleIsect, bool) {
	return TrianglesIntersections(t1[0], t1[1], t1[2], t2[0], t2[1], t2[2])
}

// SymbolicIntersections computes the symbolic intersection of two triangles
// without excluding triangles that share vertices.
//
// For example, two triangles sharing exactly one vertex and nothing else
// produce the single pair locating that vertex on both triangles.
func SymbolicIntersections(p0, p1, p2, q0, q1, q2 model3d.Coord3D) []TriangleIsect {
	p := [3]model3d.Coord3D{p0, p1, p2}
	q := [3]model3d.Coord3D{q0, q1, q2}

	var qSigns, pSigns [3]Sign
	for i, c := range q {
		qSigns[i] = Orient3D(p0, p1, p2, c)
	}
	if strictlyOneSide(qSigns) {
		return nil
	}
	for i, c := range p {
		pSigns[i] = Orient3D(q0, q1, q2, c)
	}
	if strictlyOneSide(pSigns) {
		return nil
	}

	var res isectSet
	if qSigns == [3]Sign{} {
		axis := projectionAxis(&p)
		pPlanar := newPlanarTriangle(&p, axis)
		qPlanar := newPlanarTriangle(&q, axis)
		for i := 0; i < 3; i++ {
			planarEdgeIntersections(&p, i, qPlanar, false, &res)
			planarEdgeIntersections(&q, i, pPlanar, true, &res)
		}
	} else {
		edgesIntersections(&p, pSigns, &q, false, &res)
		edgesIntersections(&q, qSigns, &p, true, &res)
	}
	return res.list
}

func strictlyOneSide(signs [3]Sign) bool {
	return signs[0] != Zero && signs[0] == signs[1] && signs[1] == signs[2]
}

// edgesIntersections adds every point where an edge of a meets triangle b,
// for non-coplanar triangles.
//
// The signs give the side of b's plane that each vertex of a is on.
func edgesIntersections(
	a *[3]model3d.Coord3D,
	signs [3]Sign,
	b *[3]model3d.Coord3D,
	swapped bool,
	res *isectSet,
) {
	var bPlanar *planarTriangle
	planar := func() *planarTriangle {
		if bPlanar == nil {
			bPlanar = newPlanarTriangle(b, projectionAxis(b))
		}
		return bPlanar
	}

	for i := 0; i < 3; i++ {
		j, k := (i+1)%3, (i+2)%3
		sj, sk := signs[j], signs[k]
		switch {
		case sj == Zero && sk == Zero:
			planarEdgeIntersections(a, i, planar(), swapped, res)
		case sj == Zero:
			if f, ok := planar().locate(a[j]); ok {
				res.add(feature{kind: vertexFeature, index: j}, f, swapped)
			}
		case sk == Zero:
			if f, ok := planar().locate(a[k]); ok {
				res.add(feature{kind: vertexFeature, index: k}, f, swapped)
			}
		case sj != sk:
			if f, ok := crossingFeature(a[j], a[k], b); ok {
				res.add(feature{kind: edgeFeature, index: i}, f, swapped)
			}
		}
	}
}

// planarEdgeIntersections adds the endpoints of the intersection between
// edge e of a and triangle b, where the edge lies in the plane of b.
func planarEdgeIntersections(
	a *[3]model3d.Coord3D,
	e int,
	b *planarTriangle,
	swapped bool,
	res *isectSet,
) {
	j, k := (e+1)%3, (e+2)%3
	edge := feature{kind: edgeFeature, index: e}

	for _, v := range [2]int{j, k} {
		if f, ok := b.locate(a[v]); ok {
			res.add(feature{kind: vertexFeature, index: v}, f, swapped)
		}
	}

	u, v := project(a[j], b.axis), project(a[k], b.axis)

	// Vertices of b in the relative interior of the edge.
	var sides [3]Sign
	for i, c := range b.proj {
		sides[i] = Orient2D(u, v, c)
		if sides[i] == Zero && b.coords[i] != a[j] && b.coords[i] != a[k] &&
			onSegment(u, v, c) {
			res.add(edge, feature{kind: vertexFeature, index: i}, swapped)
		}
	}

	// Proper crossings with the edges of b.
	for i := 0; i < 3; i++ {
		m, n := (i+1)%3, (i+2)%3
		if sides[m] == Zero || sides[n] == Zero || sides[m] == sides[n] {
			continue
		}
		s1 := Orient2D(b.proj[m], b.proj[n], u)
		s2 := Orient2D(b.proj[m], b.proj[n], v)
		if s1 != Zero && s2 != Zero && s1 != s2 {
			res.add(edge, feature{kind: edgeFeature, index: i}, swapped)
		}
	}
}

// onSegment checks if c is on the closed segment uv, given that the three
// points are collinear.
func onSegment(u, v, c model2d.Coord) bool {
	if u.X != v.X {
		return between(u.X, v.X, c.X)
	}
	return between(u.Y, v.Y, c.Y)
}

func between(a, b, x float64) bool {
	if a > b {
		a, b = b, a
	}
	return x >= a && x <= b
}
