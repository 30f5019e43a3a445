package main

import (
	"os"

	"github.com/HajajeHamid/google-feedserver/cmd"
	"github.com/HajajeHamid/google-feedserver/pkg/logger"
)

func main() {
	if err := cmd.RootApp().Run(os.Args); err != nil {
		logger.Error("feedclient failed", "error", err)
		os.Exit(1)
	}
}
