package main

import (
	"flag"
	"log"

	"github.com/stpnv0/EventBackend/internal/app"
	"github.com/stpnv0/EventBackend/internal/config"
)

func main() {
	envFile := flag.String("env", ".env", "optional dotenv file loaded before the environment is read")
	flag.Parse()

	cfg := config.MustLoad(*envFile)

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
