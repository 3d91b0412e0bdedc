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

	result, err := common.NewImageProcessor(cfg).Enlarge()
	if err != nil {
		log.Fatalf("Enlarge failed: %v", err)
	}

	fmt.Printf("✨ Done! %s and %s created\n", result.ContainerPath, result.PreviewPath)
}
