// Package xlog centralizes the CLI's logging setup: a single
// github.com/sirupsen/logrus configuration shared by every cmd/ripser2
// subcommand. The core packages (f2vec, simplicial, container, complex,
// reduce, vietorisrips) never import this — a library doesn't log on its
// caller's behalf.
package xlog

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Init configures the package-level logrus logger for CLI use: text
// output to stderr, level controlled by verbose, matching the verbosity
// toggle pattern of Consensys-go-corset's root command.
func Init(verbose bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level := logrus.InfoLevel
	if verbose {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)
}
