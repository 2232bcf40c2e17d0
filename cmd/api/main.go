// Command api runs the CareerHub HTTP server.
package main

import (
	"log"

	"careerhub-backend/internal/server"
)

// @title CareerHub API
// @version 1.0
// @description Recruiting backend: career posting submission, organizations and plans.
// @BasePath /api/v1
func main() {
	srv := server.NewServer()

	log.Printf("Listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("cannot start server: %s", err)
	}
}
