package isect

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/unixpickle/model3d/model2d"
	"github.com/unixpickle/model3d/model3d"
	"golang.org/x/exp/constraints"
)

// A Sign is the exact sign of a geometric determinant.
type Sign int

const (
	Negative Sign = -1
	Zero     Sign = 0
	Positive Sign = 1
)

const (
	// Half of the machine epsilon, i.e. the unit roundoff for float64.
	roundoff = 1.1102230246251565e-16

	orient2DErrBound = (3 + 16*roundoff) * roundoff
	orient3DErrBound = (7 + 56*roundoff) * roundoff

	// Below this magnitude, products may have lost bits to underflow and the
	// static error bounds no longer hold.
	minFilterMagnitude = 1e-280
)

func signOf[F constraints.Float](x F) Sign {
	if x > 0 {
		return Positive
	} else if x < 0 {
		return Negative
	}
	return Zero
}

func filterUsable(magnitude float64) bool {
	return magnitude >= minFilterMagnitude && !math.IsInf(magnitude, 0)
}

// Orient3D computes the exact sign of det[b-a, c-a, d-a].
//
// The result is Positive when d lies on the side of the plane through a, b, c
// that the normal (b-a)x(c-a) points to, Negative on the other side, and Zero
// when the four points are coplanar.
func Orient3D(a, b, c, d model3d.Coord3D) Sign {
	adx, ady, adz := a.X-d.X, a.Y-d.Y, a.Z-d.Z
	bdx, bdy, bdz := b.X-d.X, b.Y-d.Y, b.Z-d.Z
	cdx, cdy, cdz := c.X-d.X, c.Y-d.Y, c.Z-d.Z

	bdycdz, bdzcdy := bdy*cdz, bdz*cdy
	cdyadz, cdzady := cdy*adz, cdz*ady
	adybdz, adzbdy := ady*bdz, adz*bdy

	det := adx*(bdycdz-bdzcdy) + bdx*(cdyadz-cdzady) + cdx*(adybdz-adzbdy)
	permanent := (math.Abs(bdycdz)+math.Abs(bdzcdy))*math.Abs(adx) +
		(math.Abs(cdyadz)+math.Abs(cdzady))*math.Abs(bdx) +
		(math.Abs(adybdz)+math.Abs(adzbdy))*math.Abs(cdx)

	// det is det[a-d, b-d, c-d], which has the opposite sign of our result.
	if filterUsable(permanent) {
		errBound := orient3DErrBound * permanent
		if det > errBound || -det > errBound {
			return -signOf(det)
		}
	}
	return -exactOrient3D(a, b, c, d)
}

func exactOrient3D(a, b, c, d model3d.Coord3D) Sign {
	pd := preciseCoord(d)
	ad := preciseCoord(a).Sub(pd)
	bd := preciseCoord(b).Sub(pd)
	cd := preciseCoord(c).Sub(pd)
	return Sign(ad.Dot(bd.Cross(cd)).Sign())
}

// Orient2D computes the exact orientation of the 2D triangle abc.
//
// The result is Positive for counterclockwise, Negative for clockwise, and
// Zero when the points are collinear.
func Orient2D(a, b, c model2d.Coord) Sign {
	detLeft := (a.X - c.X) * (b.Y - c.Y)
	detRight := (a.Y - c.Y) * (b.X - c.X)
	det := detLeft - detRight

	magnitude := math.Abs(detLeft) + math.Abs(detRight)
	if filterUsable(magnitude) {
		errBound := orient2DErrBound * magnitude
		if det > errBound || -det > errBound {
			return signOf(det)
		}
	}
	return exactOrient2D(a, b, c)
}

func exactOrient2D(a, b, c model2d.Coord) Sign {
	pc := r3.NewPreciseVector(c.X, c.Y, 0)
	ac := r3.NewPreciseVector(a.X, a.Y, 0).Sub(pc)
	bc := r3.NewPreciseVector(b.X, b.Y, 0).Sub(pc)
	return Sign(ac.Cross(bc).Z.Sign())
}

func preciseCoord(c model3d.Coord3D) r3.PreciseVector {
	return r3.NewPreciseVector(c.X, c.Y, c.Z)
}

// projectionAxis finds a coordinate axis such that dropping it maps the plane
// of t onto 2D without collapsing t.
//
// The axis with the largest approximate normal component is tried first, but
// the choice is confirmed with an exact orientation test.
func projectionAxis(t *[3]model3d.Coord3D) int {
	n := t[1].Sub(t[0]).Cross(t[2].Sub(t[0])).Abs().Array()
	axes := [3]int{0, 1, 2}
	for i := 0; i < 2; i++ {
		for j := i + 1; j < 3; j++ {
			if n[axes[j]] > n[axes[i]] {
				axes[i], axes[j] = axes[j], axes[i]
			}
		}
	}
	for _, axis := range axes {
		if Orient2D(project(t[0], axis), project(t[1], axis), project(t[2], axis)) != Zero {
			return axis
		}
	}
	panic("degenerate triangle")
}

// project drops the given axis from c.
func project(c model3d.Coord3D, axis int) model2d.Coord {
	switch axis {
	case 0:
		return model2d.XY(c.Y, c.Z)
	case 1:
		return model2d.XY(c.Z, c.X)
	default:
		return model2d.XY(c.X, c.Y)
	}
}
