//go:build !tinygo

package main

import "uf2status/internal/cli"

func main() {
	cli.Execute()
}
