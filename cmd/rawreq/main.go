package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shravanasati/rawreq/internal/diag"
	"github.com/shravanasati/rawreq/internal/request"
	"github.com/shravanasati/rawreq/internal/server"
)

const address = "127.0.0.1:3000"

func main() {
	printer := diag.NewPrinter(log.Default(), true)

	srv, err := server.Serve(server.ServerOpts{
		Address: address,
		Parser: request.ParserOpts{
			ReadTimeout:    5 * time.Second,
			MaxLineBytes:   8 * 1024,
			MaxHeaderCount: 100,
			MaxBodyBytes:   10 << 20,
		},
		Handler: printer.Report,
	})
	if err != nil {
		log.Fatalf("Error creating tcp listener: %v", err)
	}
	defer srv.Close()
	log.Println("Listening on", address)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	log.Println("Server gracefully stopped")
}
