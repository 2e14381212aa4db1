// SPDX-License-Identifier: MIT

// Package pathmap precomputes, for every input compound of a model, the
// shortest forward pathway to each compound it can reach.
//
// Each source is walked breadth-first over pathways: level k holds the
// pathways of k reactions, sorted with pathway.Compare, and the first
// pathway to reach a compound is the one recorded. Common compounds are
// recorded as targets but never extended, and no pathway grows past the
// length limit.
//
// The finished Map answers point lookups (Get) and a connectivity score:
// how many recorded pathways pass through a compound on the way to
// somewhere else.
package pathmap
