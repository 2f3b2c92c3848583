// The main package for the sitegen executable.
package main

import (
	"github.com/JakeFAU/sitegen/cmd"
)

// main is the entry point of the application.
// It defers all execution to the Cobra CLI library.
func main() {
	cmd.Execute()
}
