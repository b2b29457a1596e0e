package main

import (
	"flag"
	"log"

	"tutor_dashboard_backend/internal/app"
	"tutor_dashboard_backend/internal/config"
	"tutor_dashboard_backend/pkg/configwatcher"
	"tutor_dashboard_backend/pkg/logger"
)

func main() {
	configDir := flag.String("config", "configs", "directory containing config.yaml")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	go configwatcher.WatchConfig(*configDir+"/config.yaml", application.ApplyConfig)

	application.Run()
}
