package main

import (
	"os"

	"github.com/llehouerou/tagedit/internal/cli"
)

func main() {
	os.Exit(cli.New().Run(os.Args[1:]))
}
