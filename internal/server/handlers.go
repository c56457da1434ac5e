package server

import (
	"net"

	"github.com/shravanasati/rawreq/internal/request"
)

// Handler receives the outcome of parsing one connection: either a request or
// the error that aborted the parse. Nothing is ever written back to the client.
type Handler func(remote net.Addr, req *request.Request, err error)
