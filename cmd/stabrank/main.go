package main

import (
	"os"

	"github.com/wonny/stabrank/cmd/stabrank/commands"
)

// main is the entry point for the stabrank CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/stabrank [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
