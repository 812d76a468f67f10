// Copyright 2022 by Gilbert Ramirez <gram@alumni.rice.edu>

// stackdemo drives every genericstack operation, including the expected
// failures, and prints what happens.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
