// Command migrate applies the database schema and optionally seeds a
// user with starter credit.
package main

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"gosaju/adapters/postgres"
	"gosaju/internal/migration"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: migrate <database_url> [seed_user_id seed_credits]")
	}
	databaseURL := os.Args[1]

	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	migrator := migration.NewRunner()
	if err := migrator.Run(ctx, db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Printf("Migration %s complete", migrator.Version())

	if len(os.Args) >= 4 {
		userID, err := uuid.Parse(os.Args[2])
		if err != nil {
			log.Fatalf("Invalid seed user id: %v", err)
		}
		amount, err := strconv.Atoi(os.Args[3])
		if err != nil || amount < 0 {
			log.Fatalf("Invalid seed credit amount: %s", os.Args[3])
		}

		ledger := postgres.NewCreditRepository(db)
		if err := ledger.Grant(ctx, userID, amount, "초기 지급"); err != nil {
			log.Fatalf("Failed to seed credits: %v", err)
		}
		log.Printf("Seeded %d credits for %s", amount, userID)
	}
}
