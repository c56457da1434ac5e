package server

import (
	"log"
	"runtime/debug"

	"github.com/shravanasati/rawreq/internal/diag"
	"github.com/shravanasati/rawreq/internal/request"
)

type ServerOpts struct {
	// The address for the server to listen on.
	Address string

	// Parser options used for every connection.
	Parser request.ParserOpts

	// Handle each connection on its own goroutine instead of one at a time.
	Concurrent bool

	// Handler is called once per accepted connection. Defaults to a plain diag.Printer.
	Handler Handler

	// Recovery takes the return value of the recover() call when a handler panics.
	// The connection is closed afterwards and the accept loop continues.
	Recovery func(any)
}

const defaultAddress = "127.0.0.1:3000"

var defaultRecovery = func(r any) {
	log.Println("recovered from panic:", r)
	debug.PrintStack()
}

var defaultHandler = diag.NewPrinter(nil, false).Report
