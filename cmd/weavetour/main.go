// Command weavetour is an interactive Weave Evaluations tutorial for the
// terminal and the browser.
package main

import (
	"fmt"
	"os"

	"github.com/vanderheijden86/weavetour/pkg/debug"
)

func main() {
	err := newRootCmd().Execute()
	debug.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
