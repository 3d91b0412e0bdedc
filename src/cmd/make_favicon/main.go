package main

import (
	"fmt"
	"log"

	"seedoc/src/common"
	"seedoc/src/config"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if _, err := common.NewImageProcessor(cfg).ConvertFavicon(); err != nil {
		log.Fatalf("Conversion failed: %v", err)
	}

	fmt.Printf("✅ %s created!\n", cfg.Favicon.Output)
}
