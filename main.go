package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gosaju/adapters/almanac"
	"gosaju/adapters/llm"
	"gosaju/adapters/memory"
	"gosaju/adapters/postgres"
	"gosaju/app"
	"gosaju/internal/config"
	"gosaju/internal/errors"
	"gosaju/internal/migration"
	"gosaju/ports"
	"gosaju/ui"
)

// initDatabase initializes the PostgreSQL database connection
func initDatabase(appConfig *config.Config) (*sqlx.DB, error) {
	if appConfig.Database.URL == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required")
	}

	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}

	migrator := migration.NewRunner()
	if err := migrator.Run(context.Background(), db); err != nil {
		return nil, errors.Wrap(err, "database migration failed")
	}

	return db, nil
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	gin.SetMode(appConfig.Server.GinMode)

	var (
		ledger   ports.CreditLedger
		readings ports.ReadingRepository
	)
	db, err := initDatabase(appConfig)
	if err != nil {
		log.Printf("Database unavailable (%v), falling back to in-memory stores", err)
		ledger = memory.NewLedger()
		readings = memory.NewReadings()
	} else {
		defer db.Close()
		ledger = postgres.NewCreditRepository(db)
		readings = postgres.NewReadingRepository(db)
	}

	llmClient, err := llm.NewClient(llm.Config{
		APIKey:      appConfig.AI.OpenAIKey,
		Timeout:     appConfig.AI.Timeout,
		Temperature: appConfig.AI.Temperature,
	})
	if err != nil {
		log.Fatalf("Failed to create LLM client: %v", err)
	}

	analysisService := app.NewAnalysisService(almanac.New())
	fortuneService := app.NewFortuneService(
		analysisService, ledger, readings, llmClient,
		appConfig.AI.OpenAIModel, appConfig.AI.MaxTokens,
	)

	server := ui.NewServer(analysisService, fortuneService, ledger, readings)
	if err := server.Run(":" + appConfig.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
