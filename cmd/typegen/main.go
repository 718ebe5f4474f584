package main

import (
	"os"

	"github.com/teranos/papyrus-typegen/cmd/typegen/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
