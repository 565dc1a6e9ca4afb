package main

import (
	"bankapi/config"
	"bankapi/database"
	"bankapi/routers"
	"context"
	"log"
)

func main() {
	cfg := config.LoadConfig()
	db := database.ConnectDb(cfg)
	defer database.Close(db)

	// The load finishes (or is skipped) before the server accepts requests.
	loadDataset(context.Background(), cfg, db)

	app := routers.NewApp(cfg, db)

	log.Printf("Server is running on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
