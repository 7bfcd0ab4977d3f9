package main

import (
	"github.com/thanhnguyen2187/wadex/cli"
)

func main() {
	cli.Start()
}
