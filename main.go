package main

import (
	"log"

	"github.com/miles/straymaps/cmd"
)

var (
	version  = "UNKNOWN"
	revision = "UNKNOWN"
)

func main() {
	cmd.Version = version
	cmd.Revision = revision
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
