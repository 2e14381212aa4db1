// SPDX-License-Identifier: MIT

// Package paint computes distance paintings: for one target compound, the
// minimum number of reaction hops separating every other compound from it.
//
// A painting is a uniform-cost expansion from the target over a compound
// adjacency supplied by the caller. Walking producer adjacency backward
// answers "how many reactions until I can make the target"; walking
// successor adjacency forward answers "how many reactions after the target".
// The search engine uses producer paintings as its A*-style estimate.
//
// Rules:
//
//   - The target always gets distance 0, even when it is a common compound.
//   - Common compounds are never painted and never expanded.
//   - A compound already painted keeps its first (minimal) distance.
//   - A frontier compound at distance d expands only while d+1 < MaxPathLen.
//
// Determinism
//
//	The frontier is a min-heap ordered by (distance, compound), so ties are
//	broken by compound ID and the painting does not depend on map iteration.
//
// Complexity (C = compounds, A = adjacency entries visited)
//
//   - Time:   O((C + A) log C)
//   - Memory: O(C)
//
// Usage
//
//	dist, err := paint.Paint(
//	    paint.NetworkFunc(func(c string) []string { return upstream[c] }),
//	    "mal__L_c",
//	    paint.WithCommons(commons),
//	    paint.WithMaxPathLen(100),
//	)
package paint
