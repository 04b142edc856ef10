package isect

import (
	"math"

	"github.com/unixpickle/model3d/model3d"
	"golang.org/x/exp/slices"
)

// IsectPoint approximates the coordinates of a symbolic intersection point
// of triangles t1 and t2.
//
// The coordinates are computed with regular floating-point arithmetic, so the
// result is only as accurate as the input allows.
//
// Returns false if the pair does not determine a single point, such as when
// both regions are interiors.
func IsectPoint(x TriangleIsect, t1, t2 *model3d.Triangle) (model3d.Coord3D, bool) {
	triangleOf := func(r TriangleRegion) *model3d.Triangle {
		if r.InT1() {
			return t1
		}
		return t2
	}

	r1, r2 := x.First, x.Second
	if r1.Dim() > r2.Dim() {
		r1, r2 = r2, r1
	}
	a, b := triangleOf(r1), triangleOf(r2)

	if r1.Dim() == 0 {
		return a[r1.Index()], true
	} else if r1.Dim() == 2 {
		return model3d.Coord3D{}, false
	}
	seg := edgeSegment(a, r1.Index())
	if r2.Dim() == 1 {
		return closestLinePoint(seg, edgeSegment(b, r2.Index()))
	}

	normal := b.Normal()
	dir := seg[1].Sub(seg[0])
	denom := normal.Dot(dir)
	if denom == 0 {
		return model3d.Coord3D{}, false
	}
	frac := normal.Dot(b[0].Sub(seg[0])) / denom
	return seg[0].Add(dir.Scale(frac)), true
}

func edgeSegment(t *model3d.Triangle, i int) model3d.Segment {
	return model3d.Segment{t[(i+1)%3], t[(i+2)%3]}
}

// closestLinePoint finds the midpoint of the shortest segment between the
// lines through s1 and s2.
func closestLinePoint(s1, s2 model3d.Segment) (model3d.Coord3D, bool) {
	d1 := s1[1].Sub(s1[0])
	d2 := s2[1].Sub(s2[0])
	r := s1[0].Sub(s2[0])

	a := d1.Dot(d1)
	b := d1.Dot(d2)
	c := d1.Dot(r)
	e := d2.Dot(d2)
	f := d2.Dot(r)

	denom := a*e - b*b
	if denom == 0 {
		return model3d.Coord3D{}, false
	}
	t1 := (b*f - c*e) / denom
	t2 := (a*f - b*c) / denom
	p1 := s1[0].Add(d1.Scale(t1))
	p2 := s2[0].Add(d2.Scale(t2))
	return p1.Add(p2).Scale(0.5), true
}

// OrderedPolygon sorts the result of a coplanar overlap so that the points
// go counterclockwise around the normal of t1.
//
// The returned slice is a copy; points that cannot be reconstructed with
// IsectPoint are placed at the end in their original order.
func OrderedPolygon(xs []TriangleIsect, t1, t2 *model3d.Triangle) []TriangleIsect {
	res := append([]TriangleIsect{}, xs...)
	if len(res) < 3 {
		return res
	}

	points := make([]model3d.Coord3D, len(res))
	valid := make([]bool, len(res))
	var centroid model3d.Coord3D
	var count float64
	for i, x := range res {
		points[i], valid[i] = IsectPoint(x, t1, t2)
		if valid[i] {
			centroid = centroid.Add(points[i])
			count++
		}
	}
	if count == 0 {
		return res
	}
	centroid = centroid.Scale(1 / count)

	coords := (*[3]model3d.Coord3D)(t1)
	axis := projectionAxis(coords)
	orientation := Orient2D(project(coords[0], axis), project(coords[1], axis),
		project(coords[2], axis))
	center := project(centroid, axis)

	angles := make([]float64, len(res))
	for i, p := range points {
		if !valid[i] {
			angles[i] = math.Inf(1)
			continue
		}
		d := project(p, axis).Sub(center)
		angles[i] = math.Atan2(d.Y, d.X) * float64(orientation)
	}

	indices := make([]int, len(res))
	for i := range indices {
		indices[i] = i
	}
	slices.SortStableFunc(indices, func(i, j int) bool {
		return angles[i] < angles[j]
	})
	sorted := make([]TriangleIsect, len(res))
	for i, j := range indices {
		sorted[i] = res[j]
	}
	return sorted
}
