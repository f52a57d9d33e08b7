// Command cakectl drives a running cake shop server through its JSON API.
package main

import (
	"os"

	"github.com/jsamuelsen11/cakeshop/cmd/cakectl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
