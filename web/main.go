package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-realtime-raytracer/pkg/config"
	"github.com/df07/go-realtime-raytracer/web/server"
)

func main() {
	envFile := flag.String("env", ".env", "Path to an optional .env file")
	port := flag.Int("port", 0, "Port to serve on (overrides RAYTRACER_PORT)")
	workers := flag.Int("workers", -1, "Number of render workers, 0 = one per CPU (overrides RAYTRACER_WORKERS)")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Printf("Error loading config: %v", err)
		os.Exit(1)
	}
	if *port > 0 {
		cfg.Port = *port
	}
	if *workers >= 0 {
		cfg.Workers = *workers
	}

	webServer := server.NewServer(cfg.Port, cfg.Workers)

	log.Printf("Realtime Raytracer Web Server")
	log.Printf("Visit http://localhost:%d/api/stream to watch the animation", cfg.Port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
