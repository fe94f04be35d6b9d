package main

import (
	"log"

	"shapepad/internal/config"
	"shapepad/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	ui.RunApp(cfg)
}
