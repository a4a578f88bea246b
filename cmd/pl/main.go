package main

import (
	"os"

	"github.com/shloksachdev/PaperLens/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
