// SPDX-License-Identifier: MIT

package core

import (
	"cmp"
	"math"
)

// Coordinate is a position on the drawn map.
type Coordinate struct {
	X float64
	Y float64
}

// CompareCoordinates orders positions top to bottom, then left to right.
func CompareCoordinates(a, b Coordinate) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}

	return cmp.Compare(a.X, b.X)
}

// Distance returns the euclidean distance between two positions.
func (c Coordinate) Distance(o Coordinate) float64 {
	return math.Hypot(c.X-o.X, c.Y-o.Y)
}

// NodeKind distinguishes metabolite nodes from every other drawn marker.
type NodeKind int

const (
	// Marker is any non-metabolite node (multimarker, midmarker, ...).
	Marker NodeKind = iota

	// Metabolite is a drawn instance of a compound.
	Metabolite
)

// String returns "metabolite" or "marker".
func (k NodeKind) String() string {
	if k == Metabolite {
		return "metabolite"
	}

	return "marker"
}

// Node is one drawn node of a metabolic map.
// Several metabolite nodes may share a BiggID; Primary marks the preferred one.
type Node struct {
	ID      int
	Kind    NodeKind
	Loc     Coordinate
	BiggID  string
	Name    string
	Primary bool
}

// IsMetabolite reports whether the node draws a compound.
func (n *Node) IsMetabolite() bool { return n.Kind == Metabolite }
