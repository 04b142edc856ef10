package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/tri-isect/isect"
)

func main() {
	var concurrency int
	var reportPath string
	var outputPath string
	flag.IntVar(&concurrency, "concurrency", 0, "maximum number of Goroutines (0 for GOMAXPROCS)")
	flag.StringVar(&reportPath, "report", "", "path to write binary intersection report")
	flag.StringVar(&outputPath, "output-stl", "", "path to write intersecting triangles")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: mesh_isect [flags] <input.stl>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath := args[0]

	log.Println("Loading mesh...")
	inputTris, err := isect.Load(inputPath, model3d.ReadSTL)
	essentials.Must(err)
	mesh := model3d.NewMeshTriangles(inputTris)
	log.Printf(" => loaded %d triangles", len(inputTris))

	log.Println("Searching for intersections...")
	tris, isects := isect.MeshSelfIntersections(mesh, concurrency)
	log.Printf(" => found %d intersecting pairs", len(isects))

	if reportPath != "" {
		log.Println("Writing report...")
		essentials.Must(isect.Save(reportPath, isects, isect.WriteMeshIsects))
	}

	if outputPath != "" {
		log.Println("Writing intersecting triangles...")
		output := model3d.NewMesh()
		for _, x := range isects {
			output.Add(tris[x.I])
			output.Add(tris[x.J])
		}
		essentials.Must(output.SaveGroupedSTL(outputPath))
	}
}
