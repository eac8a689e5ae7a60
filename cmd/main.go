package main

import (
	"fmt"
	"os"

	"github.com/nchoosek/tt2nck/cmd/root"
)

func main() {
	rootCmd := root.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tt2nck: %v\n", err)
		os.Exit(1)
	}
}
