package main

import (
	"os"

	"github.com/msto63/mLog/cmd/mlog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
