// Command gridlayout renders and inspects grid layout files for small displays.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/displaylayout/cmd/gridlayout/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
