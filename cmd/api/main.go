// Command api serves the minimal analysis-only HTTP surface: no
// billing, no persistence, no LLM. Useful for embedding the rule
// engine behind another product.
package main

import (
	"log"
	"net/http"
	"os"

	"gosaju/adapters/almanac"
	"gosaju/app"
	"gosaju/ui"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	analysis := app.NewAnalysisService(almanac.New())
	api := ui.NewApp(analysis)

	addr := ":" + port
	log.Printf("[api] listening on %s", addr)
	if err := http.ListenAndServe(addr, api); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
