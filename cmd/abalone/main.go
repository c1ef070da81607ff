package main

import (
	"github.com/metamatong/comp3981-abalone-sumitoq/internal/cli"
)

func main() {
	cli.Execute()
}
