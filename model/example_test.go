// SPDX-License-Identifier: MIT

package model_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/metapath/internal/testnet"
	"github.com/katalvlaran/metapath/model"
)

// ExampleLoad builds the two-reaction chain a_c → b_c → c_c and inspects
// its adjacency.
func ExampleLoad() {
	m, err := model.Load(strings.NewReader(testnet.ChainJSON), nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(m.Successors("a_c"), m.Producers("c_c"), len(m.Successors("c_c")))

	dist, _ := m.PaintProducers("c_c", m.Commons())
	fmt.Println(dist["a_c"], dist["b_c"])
	// Output:
	// [R1] [R2] 0
	// 2 1
}
