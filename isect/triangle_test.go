package isect

import (
	"math/rand"
	"testing"

	"github.com/unixpickle/model3d/model3d"
)

func unitTriangle() model3d.Triangle {
	return model3d.Triangle{
		model3d.XYZ(0, 0, 0),
		model3d.XYZ(1, 0, 0),
		model3d.XYZ(0, 1, 0),
	}
}

func TestTrianglesIntersectionsSeparated(t *testing.T) {
	t1 := unitTriangle()
	t2 := model3d.Triangle{
		model3d.XYZ(0, 0, 1),
		model3d.XYZ(1, 0, 0.5),
		model3d.XYZ(0, 1, 2),
	}
	if res, ok := TriangleIntersections(&t1, &t2); ok || len(res) != 0 {
		t.Errorf("unexpected intersection: %v", Isects(res))
	}
	if res, ok := TriangleIntersections(&t2, &t1); ok || len(res) != 0 {
		t.Errorf("unexpected intersection: %v", Isects(res))
	}

	// Coplanar but disjoint.
	t3 := model3d.Triangle{
		model3d.XYZ(1, 1, 0),
		model3d.XYZ(2, 1, 0),
		model3d.XYZ(1, 2, 0),
	}
	if TrianglesIntersect(t1[0], t1[1], t1[2], t3[0], t3[1], t3[2]) {
		t.Error("coplanar triangles should not intersect")
	}
}

func TestTrianglesIntersectionsSharedVertex(t *testing.T) {
	t1 := unitTriangle()
	t2 := model3d.Triangle{
		model3d.XYZ(0, 0, 0),
		model3d.XYZ(-1, 0, 1),
		model3d.XYZ(0, -1, 1),
	}
	if res, ok := TriangleIntersections(&t1, &t2); ok || len(res) != 0 {
		t.Errorf("unexpected intersection: %v", Isects(res))
	}
	raw := SymbolicIntersections(t1[0], t1[1], t1[2], t2[0], t2[1], t2[2])
	expectIsects(t, raw, []TriangleIsect{{T1RgnP0, T2RgnP0}})

	// A shared vertex suppresses the result even when the triangles cross.
	t3 := model3d.Triangle{
		model3d.XYZ(0, 0, 0),
		model3d.XYZ(0.25, 0.25, -1),
		model3d.XYZ(0.25, 0.25, 1),
	}
	if TrianglesIntersect(t1[0], t1[1], t1[2], t3[0], t3[1], t3[2]) {
		t.Error("triangles with a shared vertex should not intersect")
	}
	raw = SymbolicIntersections(t1[0], t1[1], t1[2], t3[0], t3[1], t3[2])
	expectIsects(t, raw, []TriangleIsect{{T1RgnP0, T2RgnP0}, {T1RgnT, T2RgnE0}})
}

func TestTrianglesIntersectionsSharedEdge(t *testing.T) {
	t1 := unitTriangle()
	others := []model3d.Triangle{
		{model3d.XYZ(1, 0, 0), model3d.XYZ(0, 1, 0), model3d.XYZ(1, 1, 1)},
		{model3d.XYZ(0, 1, 0), model3d.XYZ(1, 1, 0), model3d.XYZ(1, 0, 0)},
		{model3d.XYZ(0, 1, 0), model3d.XYZ(1, 0, 0), model3d.XYZ(0.2, 0.2, 0)},
	}
	for i, t2 := range others {
		if res, ok := TriangleIntersections(&t1, &t2); ok || len(res) != 0 {
			t.Errorf("case %d: unexpected intersection: %v", i, Isects(res))
		}
	}
}

func TestTrianglesIntersectionsDuplicate(t *testing.T) {
	t1 := unitTriangle()
	perms := [][3]int{{0, 1, 2}, {1, 2, 0}, {2, 0, 1}, {0, 2, 1}, {2, 1, 0}, {1, 0, 2}}
	for _, perm := range perms {
		t2 := model3d.Triangle{t1[perm[0]], t1[perm[1]], t1[perm[2]]}
		if res, ok := TriangleIntersections(&t1, &t2); ok || len(res) != 0 {
			t.Errorf("permutation %v: unexpected intersection: %v", perm, Isects(res))
		}
	}
}

func TestTrianglesIntersectionsTransversal(t *testing.T) {
	t1 := unitTriangle()
	t2 := model3d.Triangle{
		model3d.XYZ(0.1, 0.25, -1),
		model3d.XYZ(0.1, 0.25, 1),
		model3d.XYZ(3, 0.25, 0.5),
	}
	res, ok := TriangleIntersections(&t1, &t2)
	if !ok {
		t.Fatal("expected intersection")
	}
	expected := []TriangleIsect{{T1RgnT, T2RgnE2}, {T1RgnE0, T2RgnT}}
	expectIsects(t, res, expected)

	res, ok = TriangleIntersections(&t2, &t1)
	if !ok {
		t.Fatal("expected intersection")
	}
	expectIsects(t, res, Isects(expected).Swap())
}

func TestTrianglesIntersectionsEdgeThroughInterior(t *testing.T) {
	t1 := unitTriangle()
	t2 := model3d.Triangle{
		model3d.XYZ(0.25, 0.25, -1),
		model3d.XYZ(0.25, 0.25, 1),
		model3d.XYZ(-1, 0.25, 0),
	}
	res, ok := TriangleIntersections(&t1, &t2)
	if !ok {
		t.Fatal("expected intersection")
	}
	expectIsects(t, res, []TriangleIsect{{T1RgnT, T2RgnE2}, {T1RgnE1, T2RgnT}})
}

func TestTrianglesIntersectionsTouching(t *testing.T) {
	t1 := unitTriangle()

	// Vertex of T2 touches the interior of T1.
	t2 := model3d.Triangle{
		model3d.XYZ(0.25, 0.25, 0),
		model3d.XYZ(0, 0, 1),
		model3d.XYZ(1, 0, 1),
	}
	res, ok := TriangleIntersections(&t1, &t2)
	if !ok {
		t.Fatal("expected intersection")
	}
	expectIsects(t, res, []TriangleIsect{{T1RgnT, T2RgnP0}})

	// Edge of T2 crosses an edge of T1 at a single point.
	t3 := model3d.Triangle{
		model3d.XYZ(0.5, -1, -1),
		model3d.XYZ(0.5, 1, 1),
		model3d.XYZ(0.5, -3, 1),
	}
	res, ok = TriangleIntersections(&t1, &t3)
	if !ok {
		t.Fatal("expected intersection")
	}
	expectIsects(t, res, []TriangleIsect{{T1RgnE2, T2RgnE2}})

	// Vertex of T2 on an edge of T1.
	t4 := model3d.Triangle{
		model3d.XYZ(0.5, 0.5, 0),
		model3d.XYZ(1, 1, 1),
		model3d.XYZ(1, 1, -1),
	}
	res, ok = TriangleIntersections(&t1, &t4)
	if !ok {
		t.Fatal("expected intersection")
	}
	expectIsects(t, res, []TriangleIsect{{T1RgnE0, T2RgnP0}})
}

func TestTrianglesIntersectionsCoplanarInside(t *testing.T) {
	t1 := unitTriangle()
	t2 := model3d.Triangle{
		model3d.XYZ(0.2, 0.2, 0),
		model3d.XYZ(0.6, 0.2, 0),
		model3d.XYZ(0.2, 0.6, 0),
	}
	res, ok := TriangleIntersections(&t1, &t2)
	if !ok {
		t.Fatal("expected intersection")
	}
	expectIsects(t, res, []TriangleIsect{
		{T1RgnT, T2RgnP0},
		{T1RgnT, T2RgnP1},
		{T1RgnT, T2RgnP2},
	})

	// Two vertices satisfy x+y=1, so they sit on the hypotenuse of t1.
	t3 := model3d.Triangle{
		model3d.XYZ(0.25, 0.25, 0),
		model3d.XYZ(0.75, 0.25, 0),
		model3d.XYZ(0.25, 0.75, 0),
	}
	res, ok = TriangleIntersections(&t1, &t3)
	if !ok {
		t.Fatal("expected intersection")
	}
	expectIsects(t, res, []TriangleIsect{
		{T1RgnT, T2RgnP0},
		{T1RgnE0, T2RgnP1},
		{T1RgnE0, T2RgnP2},
	})
}

func TestTrianglesIntersectionsCoplanarHexagon(t *testing.T) {
	for axis := 0; axis < 3; axis++ {
		embed := func(x, y float64) model3d.Coord3D {
			arr := [3]float64{}
			arr[axis] = 2
			arr[(axis+1)%3] = x
			arr[(axis+2)%3] = y
			return model3d.NewCoord3DArray(arr)
		}
		t1 := model3d.Triangle{embed(0, 0), embed(6, 0), embed(3, 6)}
		t2 := model3d.Triangle{embed(0, 4), embed(6, 4), embed(3, -2)}
		res, ok := TriangleIntersections(&t1, &t2)
		if !ok {
			t.Fatal("expected intersection")
		}
		expectIsects(t, res, []TriangleIsect{
			{T1RgnE2, T2RgnE0},
			{T1RgnE2, T2RgnE1},
			{T1RgnE0, T2RgnE2},
			{T1RgnE0, T2RgnE0},
			{T1RgnE1, T2RgnE2},
			{T1RgnE1, T2RgnE1},
		})
		ordered := OrderedPolygon(res, &t1, &t2)
		checkConvexOrder(t, ordered, &t1, &t2)
	}
}

func TestTrianglesIntersectionsCoplanarSharedBoundary(t *testing.T) {
	t1 := unitTriangle()

	// T2 touches the middle of T1's hypotenuse with a vertex.
	t2 := model3d.Triangle{
		model3d.XYZ(0.5, 0.5, 0),
		model3d.XYZ(1, 1, 0),
		model3d.XYZ(0.5, 2, 0),
	}
	res, ok := TriangleIntersections(&t1, &t2)
	if !ok {
		t.Fatal("expected intersection")
	}
	expectIsects(t, res, []TriangleIsect{{T1RgnE0, T2RgnP0}})

	// T2 overlaps part of T1's bottom edge from outside.
	t3 := model3d.Triangle{
		model3d.XYZ(0.25, 0, 0),
		model3d.XYZ(2, 0, 0),
		model3d.XYZ(1, -1, 0),
	}
	res, ok = TriangleIntersections(&t1, &t3)
	if !ok {
		t.Fatal("expected intersection")
	}
	expectIsects(t, res, []TriangleIsect{{T1RgnE2, T2RgnP0}, {T1RgnP1, T2RgnE2}})
}

func TestTrianglesIntersectionsRandom(t *testing.T) {
	r := rand.New(rand.NewSource(1337))
	var numHits int
	for i := 0; i < 3000; i++ {
		t1 := randomTriangle(r, i%3 == 0)
		t2 := randomTriangle(r, i%3 == 0)
		if t1 == nil || t2 == nil {
			continue
		}
		res, ok := TriangleIntersections(t1, t2)
		if ok != (len(res) > 0) || len(res) > 6 {
			t.Fatalf("bad result %v (ok=%v)", Isects(res), ok)
		}
		if !ok {
			continue
		}
		numHits++

		again, _ := TriangleIntersections(t1, t2)
		if Isects(again).String() != Isects(res).String() {
			t.Fatalf("results differ between calls: %v and %v", Isects(res), Isects(again))
		}

		mirrored, _ := TriangleIntersections(t2, t1)
		expectIsects(t, mirrored, Isects(res).Swap())

		rotated := &model3d.Triangle{t1[1], t1[2], t1[0]}
		rotatedRes, _ := TriangleIntersections(rotated, t2)
		expectIsects(t, rotatedRes, rotateT1Labels(res))

		for _, x := range res {
			checkIsectPoint(t, x, t1, t2)
		}
	}
	if numHits < 50 {
		t.Errorf("too few intersections to be meaningful: %d", numHits)
	}
}

// randomTriangle samples a triangle with vertices on a small integer grid,
// which produces many shared features and degenerate alignments. If planar is
// true, the triangle is in the z=0 plane.
//
// Returns nil for degenerate triangles.
func randomTriangle(r *rand.Rand, planar bool) *model3d.Triangle {
	var res model3d.Triangle
	for i := range res {
		res[i] = model3d.XYZ(float64(r.Intn(5)), float64(r.Intn(5)), float64(r.Intn(3)))
		if planar {
			res[i].Z = 0
		}
	}
	if res[1].Sub(res[0]).Cross(res[2].Sub(res[0])).Norm() == 0 {
		return nil
	}
	return &res
}

// rotateT1Labels maps labels for triangle (p0, p1, p2) to labels for the
// rotated triangle (p1, p2, p0).
func rotateT1Labels(xs []TriangleIsect) []TriangleIsect {
	res := make([]TriangleIsect, len(xs))
	for i, x := range xs {
		r := x.First
		switch r.Dim() {
		case 0:
			r = VertexRegion(false, (r.Index()+2)%3)
		case 1:
			r = EdgeRegion(false, (r.Index()+2)%3)
		}
		res[i] = TriangleIsect{First: r, Second: x.Second}
	}
	return res
}

func checkIsectPoint(t *testing.T, x TriangleIsect, t1, t2 *model3d.Triangle) {
	p, ok := IsectPoint(x, t1, t2)
	if !ok {
		t.Fatalf("cannot reconstruct %v for %v and %v", x, t1, t2)
	}
	for i, tri := range []*model3d.Triangle{t1, t2} {
		if d := tri.Dist(p); d > 1e-8 {
			t.Fatalf("point %v of %v is %f away from triangle %d (%v, %v)",
				p, x, d, i+1, t1, t2)
		}
	}
}

func checkConvexOrder(t *testing.T, xs []TriangleIsect, t1, t2 *model3d.Triangle) {
	normal := t1.Normal()
	points := make([]model3d.Coord3D, len(xs))
	for i, x := range xs {
		var ok bool
		points[i], ok = IsectPoint(x, t1, t2)
		if !ok {
			t.Fatalf("cannot reconstruct %v", x)
		}
	}
	for i := range points {
		a, b, c := points[i], points[(i+1)%len(points)], points[(i+2)%len(points)]
		if b.Sub(a).Cross(c.Sub(b)).Dot(normal) <= 0 {
			t.Fatalf("polygon is not counterclockwise at %d: %v", i, Isects(xs))
		}
	}
}

func expectIsects(t *testing.T, actual, expected []TriangleIsect) {
	t.Helper()
	if len(actual) != len(expected) {
		t.Fatalf("expected %v but got %v", Isects(expected), Isects(actual))
	}
	for _, x := range expected {
		var found bool
		for _, y := range actual {
			if x == y {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("expected %v but got %v", Isects(expected), Isects(actual))
		}
	}
}
