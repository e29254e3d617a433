package main

import (
	"context"
	"log"
	"os"

	"ecommerce-platform/services/webapp/clients"
	"ecommerce-platform/services/webapp/config"
	"ecommerce-platform/services/webapp/console"
	"ecommerce-platform/services/webapp/widgets"
)

func main() {
	cfg, err := config.LoadConfig(".", os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// diagnostic channel
	diagnostics := log.New(os.Stderr, "webapp: ", log.LstdFlags)

	apiClient := clients.NewAPIClient(cfg.APIURL, nil)
	shell := console.NewShell(os.Stdin, os.Stdout)
	app := widgets.NewApp(apiClient, shell, diagnostics)

	if err := shell.Run(context.Background(), app); err != nil {
		log.Fatalf("Shell stopped: %v", err)
	}
}
