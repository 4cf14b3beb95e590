package main

import (
	"fmt"
	"os"

	"github.com/dbops-mcp/zed-extension/internal/config"
	"github.com/dbops-mcp/zed-extension/internal/extension"
)

func main() {
	fmt.Println("=== Starting Resolution Test ===")

	cfg, err := config.LoadConfigWithPath(config.DefaultConfigFilename)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("=== Config Loaded Successfully ===")
	fmt.Printf("Extension Name: %s\n", cfg.Extension.Name)
	fmt.Printf("Log Level: %s\n", cfg.Logging.Level)

	// Resolve a few times with different inputs; every line should be
	// identical.
	ext := extension.New()
	for _, id := range []extension.ContextServerID{"db-ops", "", "anything-else"} {
		descriptor, err := ext.ContextServerCommand(id, nil)
		if err != nil {
			fmt.Printf("Error resolving command: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("id=%q -> %s (env entries: %d)\n", string(id), descriptor.String(), len(descriptor.Env))
	}

	fmt.Println("\n=== Test Complete ===")
}
