package main

import (
	"fmt"
	"os"

	"github.com/shiftlog-dev/shiftlog/internal/commands"
	"github.com/shiftlog-dev/shiftlog/internal/config"
)

func main() {
	// .env must be loaded before flag defaults read the environment.
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
