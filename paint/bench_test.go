// SPDX-License-Identifier: MIT

package paint_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/metapath/paint"
)

// BenchmarkPaint_Chain paints a linear chain of N compounds.
func BenchmarkPaint_Chain(b *testing.B) {
	const N = 10000
	net := paint.NetworkFunc(func(c string) []string {
		i, _ := strconv.Atoi(c)
		if i+1 >= N {
			return nil
		}
		return []string{strconv.Itoa(i + 1)}
	})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = paint.Paint(net, "0", paint.WithMaxPathLen(N+1))
	}
}
