package main

import (
	"log"
	"os"

	"github.com/voicedash/airtable-proxy/app/app"
)

func main() {
	a, err := app.NewApp()
	if err != nil {
		log.Printf("Application failed: %v", err)
		os.Exit(1)
	}
	if err := a.Run(); err != nil {
		log.Printf("Application failed: %v", err)
		os.Exit(1)
	}
}
