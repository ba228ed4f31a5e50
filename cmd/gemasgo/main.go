package main

import "github.com/gemasgo/gemasgo-ledger/internal/cli"

func main() {
	cli.Execute()
}
