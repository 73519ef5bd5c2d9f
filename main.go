package main

import (
	"log"

	"paylens/app"
	"paylens/app/api"
	"paylens/app/settings"
)

func main() {
	cfg := settings.GetEffectiveSettings()

	application := app.New(cfg)
	if err := application.LoadDataset(); err != nil {
		log.Fatalf("startup failed: %v", err)
	}

	info := application.DatasetInfo()
	log.Printf("Serving %s (%d rows, %d columns) on %s",
		info.SourcePath, info.Rows, info.Columns, cfg.ListenAddr)

	server, err := api.NewServer(application, cfg)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}
	if err := server.Start(cfg.ListenAddr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
