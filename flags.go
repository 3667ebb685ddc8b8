package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chazu/facet/pkg/geom"
	"github.com/chazu/facet/pkg/kernel"
	"github.com/chazu/facet/pkg/kernel/facet"
	"github.com/chazu/facet/pkg/kernel/sdfx"
)

// parseTriple parses "x,y,z" into three floats.
func parseTriple(s string) ([3]float64, error) {
	var out [3]float64
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return out, fmt.Errorf("%q: want x,y,z", s)
	}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return out, fmt.Errorf("%q: %w", s, err)
		}
		out[i] = f
	}
	return out, nil
}

func parsePoint(s string) (geom.Point, error) {
	xyz, err := parseTriple(s)
	if err != nil {
		return geom.Point{}, err
	}
	return geom.NewPoint(xyz[0], xyz[1], xyz[2]), nil
}

func parseVector(s string) (geom.Vector, error) {
	xyz, err := parseTriple(s)
	if err != nil {
		return geom.Vector{}, err
	}
	return geom.NewVector(xyz[0], xyz[1], xyz[2]), nil
}

// newKernel maps a --kernel flag value to a meshing backend.
func newKernel(name string, cells int) (kernel.Kernel, error) {
	switch name {
	case "facet":
		return facet.New(), nil
	case "sdfx":
		return sdfx.NewWithCells(cells), nil
	default:
		return nil, fmt.Errorf("unknown kernel %q (want facet or sdfx)", name)
	}
}
