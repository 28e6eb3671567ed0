// Command strata exercises the strata collections, algebra and thread pool
// from the command line.
package main

import (
	"os"

	"github.com/ib-77/strata/cmd/strata/cli"
)

func main() {
	os.Exit(cli.Execute())
}
