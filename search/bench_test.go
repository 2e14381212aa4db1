// SPDX-License-Identifier: MIT

package search_test

import (
	"testing"

	"github.com/katalvlaran/metapath/filter"
	"github.com/katalvlaran/metapath/internal/testnet"
	"github.com/katalvlaran/metapath/search"
)

func BenchmarkGetPathway(b *testing.B) {
	e, err := search.New(testnet.Model(b))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := e.GetPathway("succ_c", "icit_c"); !ok {
			b.Fatal("no pathway")
		}
	}
}

// BenchmarkGetPathway_Include exercises the discard path for complete
// pathways that miss the required reaction.
func BenchmarkGetPathway_Include(b *testing.B) {
	m := testnet.Model(b)
	e, err := search.New(m)
	if err != nil {
		b.Fatal(err)
	}
	f, err := filter.NewInclude(filter.Params{Include: []string{"CITL"}, Model: m})
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := e.GetPathway("icit_c", "mal__L_c", f); !ok {
			b.Fatal("no pathway")
		}
	}
}
