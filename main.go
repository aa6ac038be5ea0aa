package main

import (
	"os"

	"github.com/agentforgood/sahayak-go/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
