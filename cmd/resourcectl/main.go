package main

import (
	"github.com/sirupsen/logrus"

	"github.com/mantenimiento/go-resourceclient/internal/config"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		logrus.Fatal(err)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		logrus.Fatal(err)
	}
}
