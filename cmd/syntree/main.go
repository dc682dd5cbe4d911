// Command syntree lifts parser dump files into a typed syntax tree and
// reports on the result.
package main

import (
	"os"

	"github.com/funvibe/syntree/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
