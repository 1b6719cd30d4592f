package main

import (
	"os"

	"github.com/mcarrasqub/itimer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
