//go:build tinygo

package main

import (
	"uf2status/app"
	"uf2status/hal"
)

func main() {
	app.Run(hal.New())
}
