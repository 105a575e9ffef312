package main

import (
	"fmt"
	"os"

	"github.com/RobDavenport/easel/internal/cmd"
)

// Set at build time.
var (
	BuildVersion = "0.0.0"
	Commit       = "unknown"
)

func root() int {
	root := cmd.Root()
	root.Version = fmt.Sprintf("easel %s (%s)", BuildVersion, Commit)
	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	return 0
}

func main() {
	os.Exit(root())
}
