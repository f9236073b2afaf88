// Command asteroid analyses recordings of sky frames: it reports frames
// holding an object, groups cropped objects into shapes and finds shapes
// that recur at a fixed interval.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "asteroid: %v\n", err)
		os.Exit(1)
	}
}
