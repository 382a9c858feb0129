package main

import (
	"context"
	"log"

	"hri-companion-be/internal/bootstrap"
	"hri-companion-be/internal/config"
	"hri-companion-be/internal/repository/implementation"
	"hri-companion-be/internal/server"
	"hri-companion-be/internal/tracer"
	"hri-companion-be/pkg/sheets"
)

func main() {
	// 0. Initialize Tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Spreadsheet Backend
	ctx := context.Background()
	sheetsClient, err := sheets.NewClient(ctx, cfg.Sheets.CredentialsPath, cfg.Sheets.SpreadsheetID)
	if err != nil {
		log.Panicf("Unable to connect to Google Sheets: %v", err)
	}
	if err := sheetsClient.VerifyWorksheets(ctx, implementation.AllWorksheets...); err != nil {
		log.Panicf("Spreadsheet is missing required worksheets: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(sheetsClient, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
