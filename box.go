package main

import (
	"fmt"
	"os"

	"github.com/chazu/facet/pkg/geom"
	"github.com/chazu/facet/pkg/polyhedron"
	"github.com/spf13/cobra"
)

var (
	boxOrigin string
	boxA      string
	boxB      string
	boxC      string
	boxEps    float64
	boxDigits int
)

var boxCmd = &cobra.Command{
	Use:   "box",
	Short: "Build a parallelepiped and print its measures",
	Long:  "Build the parallelepiped spanned by three edge vectors from an origin and report its topology, measures and hash.",
	Args:  cobra.NoArgs,
	Run:   runBox,
}

func init() {
	def := geom.DefaultTolerance()
	boxCmd.Flags().StringVar(&boxOrigin, "origin", "0,0,0", "base corner x,y,z")
	boxCmd.Flags().StringVar(&boxA, "a", "1,0,0", "first edge vector x,y,z")
	boxCmd.Flags().StringVar(&boxB, "b", "0,1,0", "second edge vector x,y,z")
	boxCmd.Flags().StringVar(&boxC, "c", "0,0,1", "third edge vector x,y,z")
	boxCmd.Flags().Float64Var(&boxEps, "eps", def.Eps, "comparison tolerance")
	boxCmd.Flags().IntVar(&boxDigits, "digits", def.Digits, "decimal digits kept when hashing")
	rootCmd.AddCommand(boxCmd)
}

func runBox(cmd *cobra.Command, args []string) {
	origin, err := parsePoint(boxOrigin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing --origin: %v\n", err)
		os.Exit(1)
	}
	var edges [3]geom.Vector
	for i, flag := range []struct{ name, val string }{{"a", boxA}, {"b", boxB}, {"c", boxC}} {
		edges[i], err = parseVector(flag.val)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing --%s: %v\n", flag.name, err)
			os.Exit(1)
		}
	}

	tol := geom.Tolerance{Eps: boxEps, Digits: boxDigits}
	ph, err := polyhedron.Parallelepiped(origin, edges[0], edges[1], edges[2], polyhedron.WithTolerance(tol))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	min, max := ph.BoundingBox()

	fmt.Println("Parallelepiped")
	fmt.Println("==============")
	fmt.Printf("Topology: V=%d E=%d F=%d (Euler characteristic %d)\n\n",
		ph.NumVertices(), ph.NumEdges(), ph.NumFaces(), ph.EulerCharacteristic())

	fmt.Println("Measures:")
	fmt.Printf("  Edge length: %.6f units\n", ph.Length())
	fmt.Printf("  Surface area: %.6f square units\n", ph.Area())
	fmt.Printf("  Volume: %.6f cubic units\n\n", ph.Volume())

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: (%.6f, %.6f, %.6f)\n", min[0], min[1], min[2])
	fmt.Printf("  Max: (%.6f, %.6f, %.6f)\n", max[0], max[1], max[2])
	fmt.Printf("  Centroid: %s\n\n", ph.Centroid())

	fmt.Printf("Hash: %016x\n", ph.Hash())
}
