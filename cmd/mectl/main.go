// Package main is the entry point for the mectl CLI client.
package main

import (
	"github.com/donaldgifford/property-market-engine/cmd/mectl/cmd"
)

func main() {
	cmd.Execute()
}
