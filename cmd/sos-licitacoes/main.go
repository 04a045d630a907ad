package main

import (
	"github.com/mojuniorlima-droid/sos-licitacoes/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
