// CLI entry point for the Nuktah front end.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/masroof-maindak/nuktah/internal/compiler"
	"github.com/masroof-maindak/nuktah/internal/ir"
)

// main drives the whole pipeline over one source file.
// CLI: go run ./cmd/nuktahc example/example.nkt
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: nuktahc <src.nkt>")
		os.Exit(1)
	}

	src, err := os.ReadFile(os.Args[1])
	if err != nil {
		color.Red("read error: %v", err)
		os.Exit(1)
	}

	start := time.Now()
	blocks, err := compiler.Compile(string(src))
	elapsed := time.Since(start)

	if err != nil {
		color.Red("✗ %v", err)
		os.Exit(1)
	}

	for _, line := range ir.Listing(blocks) {
		fmt.Println(line)
	}
	color.Green("✓ built in %s", elapsed)
}
