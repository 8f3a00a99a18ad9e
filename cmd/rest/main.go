package main

import (
	"context"
	"log"

	"study-buddy-be/internal/bootstrap"
	"study-buddy-be/internal/config"
	"study-buddy-be/internal/server"
	"study-buddy-be/internal/tracer"
	"study-buddy-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
