// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/metapath/core"
)

func TestParseTriggers(t *testing.T) {
	cases := []struct {
		name string
		rule string
		want []string
	}{
		{"empty", "", []string{}},
		{"single", "b0720", []string{"b0720"}},
		{"or", "b1611 or b1612 or b4122", []string{"b1611", "b1612", "b4122"}},
		{"nested", "((b0116 AND b0726) or b0727)", []string{"b0116", "b0726", "b0727"}},
		{"duplicates", "b1 and (b1 or b2)", []string{"b1", "b2"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, core.ParseTriggers(tc.rule))
		})
	}
}

func TestNormalizeTokens_OrderIndependent(t *testing.T) {
	assert.Equal(t,
		core.NormalizeTokens([]string{"b2", " b1", "b2"}),
		core.NormalizeTokens([]string{"b1", "b2"}))
}
