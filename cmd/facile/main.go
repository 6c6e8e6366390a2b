package main

import (
	"context"
	"os"

	"github.com/dmitrymomot/facile/internal/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background()))
}
