package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"seedoc/src/builder"
	"seedoc/src/config"
	"seedoc/src/watcher"
)

func main() {
	fmt.Println("Seedoc - Icon & Favicon Assets")
	fmt.Println("==============================")

	// Load config
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Loaded config: source icon %s", cfg.Icon.Source)

	assets := builder.NewAssetBuilder(cfg)
	if _, err := assets.Build(); err != nil {
		log.Fatalf("Build failed: %v", err)
	}

	if !cfg.Watch.Enabled {
		fmt.Println("✨ Done!")
		return
	}

	// Create watcher; rebuilds never re-inject the favicon link
	w, err := watcher.NewWatcher(cfg, assets)
	if err != nil {
		log.Fatalf("Failed to create watcher: %v", err)
	}

	if err := w.Start(); err != nil {
		log.Fatalf("Failed to start watcher: %v", err)
	}

	log.Println("Press Ctrl+C to stop")

	// Listen for events
	go func() {
		for event := range w.Events() {
			if event.Err != nil {
				continue
			}
			log.Printf("🔄 Rebuilt %d assets after %v", len(event.Files), event.Type)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down...")
	if err := w.Stop(); err != nil {
		log.Printf("Failed to stop watcher: %v", err)
	}
}
