// Package main provides the mdexport CLI, which converts Markdown notes
// into Word (.docx) documents.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

// Set via ldflags at release time.
var version = "dev"

func main() {
	if err := fang.Execute(context.Background(), newRootCmd(), fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}
