package main

import (
	"os"

	"github.com/hoijui/rdfconvert/internal/convertcli"
)

func main() {
	code := convertcli.Run(os.Args[1:], os.Stdout, os.Stderr, os.Stdin)
	os.Exit(code)
}
