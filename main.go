// The main package for the datascrapper executable.
package main

import (
	"github.com/BookRecomendations/DataScrapper/cmd"
)

// main is the entry point of the application.
// It defers all execution to the Cobra CLI library.
func main() {
	cmd.Execute()
}
