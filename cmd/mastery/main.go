package main

import (
	"os"

	"github.com/balkashynov/mastery/internal/commands"
)

// Set with -ldflags "-X main.version=..." at release time
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersion(version, commit, date)
	// cobra has already printed the error
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
