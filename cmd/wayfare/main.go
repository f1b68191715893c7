package main

import (
	"log"

	"github.com/wayfarelabs/wayfare/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ wayfare failed to start: %v", err)
	}
}
