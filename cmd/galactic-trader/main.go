package main

import (
	"github.com/galactictrader/galactic-trader-go/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
