// SPDX-License-Identifier: MIT

// Command metapath answers pathway queries against a metabolic map.
//
//	metapath pathway ecoli.json succ_c icit_c --include CITL
//	metapath distance ecoli.json icit_c
//	metapath stats ecoli.json
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
