package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/mealtrack/mealtrack-server/mealservice"
)

func main() {
	// Best-effort .env load for local development; real deployments set env vars.
	_ = godotenv.Load()

	if err := mealservice.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
