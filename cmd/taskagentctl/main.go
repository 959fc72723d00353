package main

import (
	"os"

	"github.com/cleitonmarx/symbiont-ai-taskagent/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
