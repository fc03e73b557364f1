package main

import (
	"context"

	"github.com/tyler180/pfr-gamelog/cmd/gamelog-cli/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}
