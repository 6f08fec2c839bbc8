package main

import (
	"os"

	logger "github.com/sirupsen/logrus"

	"folio/internal/cmd"
	"folio/pkg/config"
)

func main() {
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	config.LoadEnv()

	if err := cmd.Execute(); err != nil {
		logger.Fatalf("Error executing 'folio': %s", err)
	}
}
