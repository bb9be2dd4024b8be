package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/jlman/cmd/jlman"
)

func main() {
	rootCmd := jlman.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
