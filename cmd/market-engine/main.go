// Package main is the entry point for the property market engine server.
package main

import (
	"os"

	"github.com/donaldgifford/property-market-engine/cmd/market-engine/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
