package main

import (
	"os"

	"github.com/depanalyzer/depanalyzer/cmd/depanalyzer/commands"
)

func main() {
	os.Exit(commands.Execute())
}
