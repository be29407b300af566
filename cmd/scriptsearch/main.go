package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/crimescripting/flexsearch/api"
	"github.com/crimescripting/flexsearch/config"
	"github.com/crimescripting/flexsearch/internal/engine"
)

func main() {
	var (
		help       = flag.Bool("help", false, "Show help message")
		version    = flag.Bool("version", false, "Show version information")
		configPath = flag.String("config", "./scriptsearch.yaml", "Path to the YAML configuration file")
		port       = flag.String("port", "", "Port to run the server on (overrides config)")
		dataDir    = flag.String("data-dir", "", "Directory to store the model snapshot (overrides config)")
		locale     = flag.String("locale", "", "Stopword locale, e.g. en or nl (overrides config)")
	)

	flag.Parse()

	if *help {
		fmt.Printf("Crime Script Search - flex search over structured crime scripts\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                             # Start server with ./scriptsearch.yaml or defaults\n", os.Args[0])
		fmt.Printf("  %s --port 9000 --locale nl     # Dutch stopwords on port 9000\n", os.Args[0])
		return
	}

	if *version {
		fmt.Printf("Crime Script Search v1.0.0\n")
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *port != "" {
		cfg.Port = *port
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *locale != "" {
		cfg.Locale = *locale
	}

	log.Printf("Using data directory: %s (locale %s)", cfg.DataDir, cfg.Locale)
	searchEngine := engine.NewEngine(cfg)

	router := gin.Default()
	api.SetupRoutes(router, searchEngine)

	log.Printf("Starting server on port %s...", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
