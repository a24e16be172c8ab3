package main

import (
	"github.com/djlansom/chord-engine/cmd"
)

func main() {
	cmd.Execute()
}
