package main

import (
	"os"

	"github.com/i18n-agent/i18n-agent-mcp/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
