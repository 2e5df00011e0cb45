package main

import (
	"os"

	"github.com/dshills/groom/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
