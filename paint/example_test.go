// SPDX-License-Identifier: MIT

package paint_test

import (
	"fmt"

	"github.com/katalvlaran/metapath/paint"
)

// ExamplePaint paints a three-step chain a → b → c backward from c.
func ExamplePaint() {
	producers := map[string][]string{"c": {"b"}, "b": {"a"}}
	dist, err := paint.Paint(
		paint.NetworkFunc(func(c string) []string { return producers[c] }),
		"c",
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dist["c"], dist["b"], dist["a"])
	// Output: 0 1 2
}
