// Command prism inspects the semantic theme engine.
package main

import (
	"os"

	"github.com/opencode-ai/prism/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
