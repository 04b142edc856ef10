package isect

import (
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
	"golang.org/x/exp/slices"
)

const (
	meshLeafSize = 16
	meshMaxDepth = 32
)

// A MeshIsect records a pair of intersecting triangles from a list.
//
// I and J are indices into the list, with I < J, and Isects is the symbolic
// intersection with triangle I as T1 and triangle J as T2.
type MeshIsect struct {
	I      int
	J      int
	Isects []TriangleIsect
}

// MeshSelfIntersections finds all pairs of intersecting triangles in a mesh.
//
// The returned indices refer to the returned triangle slice.
//
// See MeshIntersections for details on concurrency.
func MeshSelfIntersections(m *model3d.Mesh, concurrency int) ([]*model3d.Triangle, []MeshIsect) {
	tris := m.TriangleSlice()
	return tris, MeshIntersections(NewListSlice(tris), concurrency)
}

// MeshIntersections finds all pairs of intersecting triangles in a list,
// sorted by (I, J).
//
// Adjacent triangles, which share a vertex or an edge, are never reported, as
// described in TrianglesIntersections.
//
// The concurrency argument specifies the maximum number of Goroutines to use
// for search. If concurrency is 0, GOMAXPROCS is used.
func MeshIntersections(tris List[*model3d.Triangle], concurrency int) []MeshIsect {
	if tris.Len < 2 {
		return []MeshIsect{}
	}
	search := newMeshSearch(tris, concurrency)
	indices := make([]int, tris.Len)
	for i := range indices {
		indices[i] = i
	}
	queue := newForkQueue[[]MeshIsect](concurrency)
	results := queue.Run(func() []MeshIsect {
		return search.Search(queue, indices, meshMaxDepth)
	})
	if len(results) == 0 {
		return []MeshIsect{}
	}

	// Pairs that straddle a split may be found in more than one leaf.
	slices.SortFunc(results, func(a, b MeshIsect) bool {
		if a.I == b.I {
			return a.J < b.J
		}
		return a.I < b.I
	})
	return slices.CompactFunc(results, func(a, b MeshIsect) bool {
		return a.I == b.I && a.J == b.J
	})
}

type meshSearch struct {
	triangles []*model3d.Triangle
	mins      []model3d.Coord3D
	maxes     []model3d.Coord3D
	centers   []model3d.Coord3D
}

func newMeshSearch(tris List[*model3d.Triangle], concurrency int) *meshSearch {
	res := &meshSearch{
		triangles: tris.Slice(),
		mins:      make([]model3d.Coord3D, tris.Len),
		maxes:     make([]model3d.Coord3D, tris.Len),
		centers:   make([]model3d.Coord3D, tris.Len),
	}
	essentials.ConcurrentMap(concurrency, tris.Len, func(i int) {
		t := res.triangles[i]
		res.mins[i] = t.Min()
		res.maxes[i] = t.Max()
		res.centers[i] = t[0].Add(t[1]).Add(t[2]).Scale(1.0 / 3)
	})
	return res
}

func (m *meshSearch) Search(queue *forkQueue[[]MeshIsect], indices []int, depth int) []MeshIsect {
	if len(indices) <= meshLeafSize || depth == 0 {
		return m.leaf(indices)
	}

	min, max := m.centers[indices[0]], m.centers[indices[0]]
	for _, i := range indices[1:] {
		min = min.Min(m.centers[i])
		max = max.Max(m.centers[i])
	}
	size := max.Sub(min)
	axis := model3d.X(1)
	if size.Y > size.X && size.Y >= size.Z {
		axis = model3d.Y(1)
	} else if size.Z > size.X && size.Z > size.Y {
		axis = model3d.Z(1)
	}
	threshold := axis.Dot(min.Mid(max))

	lessThan, greaterEqual := m.partition(indices, axis, threshold)
	if len(lessThan) == len(indices) || len(greaterEqual) == len(indices) {
		return m.leaf(indices)
	}
	r1, r2 := queue.Fork(
		func() []MeshIsect {
			return m.Search(queue, lessThan, depth-1)
		},
		func() []MeshIsect {
			return m.Search(queue, greaterEqual, depth-1)
		},
	)
	return append(r1, r2...)
}

// partition splits triangles across a plane. Triangles that cross the plane
// are placed on both sides, so any two intersecting triangles end up together
// on at least one side.
func (m *meshSearch) partition(indices []int, axis model3d.Coord3D,
	threshold float64) (lessThan, greaterEqual []int) {
	for _, i := range indices {
		var signs [3]bool
		for j, c := range m.triangles[i] {
			signs[j] = axis.Dot(c) >= threshold
		}
		if signs[0] == signs[1] && signs[1] == signs[2] {
			if signs[0] {
				greaterEqual = append(greaterEqual, i)
			} else {
				lessThan = append(lessThan, i)
			}
		} else {
			lessThan = append(lessThan, i)
			greaterEqual = append(greaterEqual, i)
		}
	}
	return
}

func (m *meshSearch) leaf(indices []int) []MeshIsect {
	var res []MeshIsect
	for a, i1 := range indices {
		for _, j1 := range indices[a+1:] {
			if !m.boundsOverlap(i1, j1) {
				continue
			}
			i, j := i1, j1
			if i > j {
				i, j = j, i
			}
			isects, ok := TriangleIntersections(m.triangles[i], m.triangles[j])
			if ok {
				res = append(res, MeshIsect{I: i, J: j, Isects: isects})
			}
		}
	}
	return res
}

func (m *meshSearch) boundsOverlap(i, j int) bool {
	min1, max1 := m.mins[i], m.maxes[i]
	min2, max2 := m.mins[j], m.maxes[j]
	return min1.X <= max2.X && min2.X <= max1.X &&
		min1.Y <= max2.Y && min2.Y <= max1.Y &&
		min1.Z <= max2.Z && min2.Z <= max1.Z
}
