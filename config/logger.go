package config

import (
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// NewLogger returns the structured logger handed to services. Replay and
// other V(1) messages are only printed outside production.
func NewLogger() logr.Logger {
	if AppConfig != nil && AppConfig.AppEnv != "production" {
		stdr.SetVerbosity(1)
	}
	return stdr.New(log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)).WithName(ServiceName)
}
