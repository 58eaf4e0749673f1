package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.WithError(err).Error("plannerctl")
		os.Exit(1)
	}
}
