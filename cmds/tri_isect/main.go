package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/tri-isect/isect"
)

func main() {
	var points bool
	var raw bool
	flag.BoolVar(&points, "points", false, "print approximate coordinates of each point")
	flag.BoolVar(&raw, "raw", false, "report touching points of triangles with shared vertices")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: tri_isect [flags] <p0x p0y p0z p1x ... q2z>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) != 18 {
		flag.Usage()
		os.Exit(1)
	}
	var coords [6]model3d.Coord3D
	for i := range coords {
		var arr [3]float64
		for j := range arr {
			x, err := strconv.ParseFloat(args[i*3+j], 64)
			essentials.Must(err)
			arr[j] = x
		}
		coords[i] = model3d.NewCoord3DArray(arr)
	}
	t1 := &model3d.Triangle{coords[0], coords[1], coords[2]}
	t2 := &model3d.Triangle{coords[3], coords[4], coords[5]}

	var result []isect.TriangleIsect
	var ok bool
	if raw {
		result = isect.SymbolicIntersections(t1[0], t1[1], t1[2], t2[0], t2[1], t2[2])
		ok = len(result) > 0
	} else {
		result, ok = isect.TriangleIntersections(t1, t2)
	}
	if len(result) > 2 {
		result = isect.OrderedPolygon(result, t1, t2)
	}

	fmt.Println(ok)
	if len(result) > 0 {
		fmt.Println(isect.Isects(result))
	}
	if points {
		for _, x := range result {
			if p, ok := isect.IsectPoint(x, t1, t2); ok {
				fmt.Printf("%v: %f %f %f\n", x, p.X, p.Y, p.Z)
			}
		}
	}
}
