package main

import (
	"os"

	"github.com/charmbracelet/log"
)

func main() {
	if err := Execute(); err != nil {
		log.Error("fieldgen failed", "err", err)
		os.Exit(1)
	}
}
