// SPDX-License-Identifier: MIT

// Command linalg drives ad hoc benchmarks and demos of the linalg packages.
package main

import (
	"os"

	"github.com/katalvlaran/linalg/cmd/linalg/cli"
)

func main() {
	if err := cli.Main().Execute(); err != nil {
		os.Exit(1)
	}
}
