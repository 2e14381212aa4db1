// SPDX-License-Identifier: MIT

package model

import (
	"github.com/katalvlaran/metapath/paint"
)

// Commons returns the common compounds: DefaultCommons, the configured
// extra seeds, and every compound whose active successor count exceeds
// MaxSuccessors. It is recomputed on each call so it always reflects the
// current reactions and direction overlays.
func (m *Model) Commons() map[string]struct{} {
	return m.CommonsAt(m.opts.MaxSuccessors)
}

// CommonsAt is Commons with an explicit successor threshold. Lowering the
// threshold never shrinks the result.
func (m *Model) CommonsAt(threshold int) map[string]struct{} {
	out := make(map[string]struct{}, len(DefaultCommons)+len(m.opts.Commons))
	for _, c := range DefaultCommons {
		out[c] = struct{}{}
	}
	for _, c := range m.opts.Commons {
		out[c] = struct{}{}
	}
	for c, n := range m.SuccessorCounts() {
		if n > threshold {
			out[c] = struct{}{}
		}
	}

	return out
}

// SuccessorCounts returns compound → number of reactions that can
// currently consume it, for every compound with at least one candidate.
func (m *Model) SuccessorCounts() map[string]int {
	out := make(map[string]int, len(m.succ))
	for c, set := range m.succ {
		n := 0
		for id := range set {
			if m.reactions[id].CanConsume(c) {
				n++
			}
		}
		out[c] = n
	}

	return out
}

// PaintProducers paints compounds by the number of reactions needed to
// turn them into target, walking producer adjacency backward. The model's
// MaxPathLen applies unless opts override it.
func (m *Model) PaintProducers(target string, commons map[string]struct{}, opts ...paint.Option) (map[string]int, error) {
	upstream := paint.NetworkFunc(func(c string) []string {
		var out []string
		for _, r := range m.Producers(c) {
			for _, s := range r.Inputs(c) {
				out = append(out, s.Metabolite)
			}
		}
		return out
	})

	return paint.Paint(upstream, target, m.paintOptions(commons, opts)...)
}

// PaintConsumers paints compounds by the number of reactions needed to
// reach them from target, walking successor adjacency forward.
func (m *Model) PaintConsumers(target string, commons map[string]struct{}, opts ...paint.Option) (map[string]int, error) {
	downstream := paint.NetworkFunc(func(c string) []string {
		var out []string
		for _, r := range m.Successors(c) {
			for _, s := range r.Outputs(c) {
				out = append(out, s.Metabolite)
			}
		}
		return out
	})

	return paint.Paint(downstream, target, m.paintOptions(commons, opts)...)
}

func (m *Model) paintOptions(commons map[string]struct{}, extra []paint.Option) []paint.Option {
	return append([]paint.Option{
		paint.WithCommons(commons),
		paint.WithMaxPathLen(m.opts.MaxPathLen),
	}, extra...)
}
