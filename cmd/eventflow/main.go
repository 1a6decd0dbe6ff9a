package main

import (
	"log"

	"github.com/apper-canvas/eventflow-ether-cell/internal/app"
	"github.com/apper-canvas/eventflow-ether-cell/internal/config"
)

func main() {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
