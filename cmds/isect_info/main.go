package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/tri-isect/isect"
	"golang.org/x/exp/slices"
)

func main() {
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: isect_info [flags] <report.bin>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath := args[0]

	log.Println("Loading report...")
	isects, err := isect.Load(inputPath, isect.ReadMeshIsects)
	essentials.Must(err)

	counts := map[string]int{}
	var numPoints int
	for _, x := range isects {
		for _, pair := range x.Isects {
			counts[pairKind(pair)]++
			numPoints++
		}
	}
	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)

	fmt.Println("Number of intersecting pairs:", len(isects))
	fmt.Println("Number of intersection points:", numPoints)
	for _, k := range kinds {
		fmt.Printf("  %s: %d\n", k, counts[k])
	}
}

// pairKind describes a pair by the dimensions of its regions, such as
// "edge-interior".
func pairKind(x isect.TriangleIsect) string {
	names := [3]string{"vertex", "edge", "interior"}
	return names[x.First.Dim()] + "-" + names[x.Second.Dim()]
}
