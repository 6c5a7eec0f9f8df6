package main

import (
	"github.com/openarchive/aipkit/cmd/aipkit/cmd"
)

func main() {
	cmd.Execute()
}
