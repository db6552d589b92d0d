package main

import (
	"context"

	"github.com/hafizd/campusplan/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}
