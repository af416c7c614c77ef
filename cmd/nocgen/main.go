// SPDX-License-Identifier: MIT
// Command nocgen generates ring and 3-D torus interconnect descriptors,
// traces dimension-order routes over them and reports hop statistics.
//
//	nocgen generate --topology=torus --num-cpus=16 --torus-xs=2 --torus-ys=2 -o net.yaml
//	nocgen route 0 13 --descriptor net.yaml
//	nocgen stats --config nocgen.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newApp().root().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
