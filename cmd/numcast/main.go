// Command numcast converts numbers between numeric kinds without losing information silently.
package main

import (
	"os"

	"github.com/ARM-software/golang-numerics/internal/numcast"
)

func main() {
	err := numcast.NewRootCommand().Execute()
	os.Exit(numcast.ExitCode(err))
}
