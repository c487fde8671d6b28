// Command eegmst reduces multichannel EEG recordings to a minimum spanning
// tree over channel distances and reports per-channel centrality.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "eegmst:", err)
		os.Exit(1)
	}
}
