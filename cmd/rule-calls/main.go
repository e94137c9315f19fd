package main

import (
	"context"
	"os"

	"github.com/arjunmahishi/pyscan/cmd"
)

func main() {
	os.Exit(cmd.Run(context.Background(), cmd.RuleCallsCommand(), os.Args, cmd.StdIO()))
}
