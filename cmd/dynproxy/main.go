package main

import (
	"os"

	"github.com/gocircum/dynproxy/pkg/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.GetLogger().Error("Command failed", "error", err)
		os.Exit(1)
	}
}
