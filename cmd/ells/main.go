package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Per-path failures were already reported as they happened.
		if !errors.Is(err, errPartialListing) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
