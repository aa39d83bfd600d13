package main

import (
	"os"

	"github.com/amine-amaach/opcua-json-codec/cmd/opcua-jsonencode/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
