// Command dicta compiles Dicta configuration documents to JSON.
package main

import (
	"os"

	"github.com/dicta-lang/dicta/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
