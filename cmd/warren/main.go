// Command warren reports where a stock sits in its three-month trading range
// and whether that makes it a buy.
package main

import (
	"context"
	"os"

	"Warren/internal/cli"
)

func main() {
	a := &cli.App{Stdout: os.Stdout, Stderr: os.Stderr}
	os.Exit(a.Run(context.Background(), os.Args[1:]))
}
