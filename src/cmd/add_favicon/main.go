package main

import (
	"fmt"
	"log"

	"seedoc/src/config"
	"seedoc/src/site"
)

// Running this twice adds the link twice.
func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := site.InjectFavicon(cfg.HTML.Path, cfg.HTML.Href, cfg.HTML.Type); err != nil {
		log.Fatalf("Failed to add favicon: %v", err)
	}

	fmt.Println("✅ Favicon added!")
}
