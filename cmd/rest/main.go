package main

import (
	"context"
	"log"

	"hotel-chatbot-be/internal/bootstrap"
	"hotel-chatbot-be/internal/config"
	"hotel-chatbot-be/internal/model"
	"hotel-chatbot-be/internal/server"
	"hotel-chatbot-be/internal/tracer"
	"hotel-chatbot-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDB(cfg.Database.Path)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	if err := database.Migrate(gormDB,
		&model.ChatSession{},
		&model.Message{},
		&model.ContactSubmission{},
		&model.PdfDocument{},
	); err != nil {
		log.Panicf("Unable to migrate database: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	// Start the event-bus consumer that fans stats out to dashboards.
	if err := container.StatsBroadcasterService.Broadcast(context.Background()); err != nil {
		log.Panicf("Unable to start stats broadcaster: %v", err)
	}

	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
