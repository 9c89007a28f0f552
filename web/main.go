package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-path-tracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to serve on")
	texture := flag.String("texture", "", "Image texture for the earth scene")
	flag.Parse()

	webServer := server.NewServer(*port, *texture)

	log.Printf("Path Tracer Web Server")
	log.Printf("Try http://localhost:%d/api/render?scene=cornell-box&width=200&spp=16", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
