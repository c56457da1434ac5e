package server

import (
	"errors"
	"log"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shravanasati/rawreq/internal/request"
)

// acceptBackoff is the pause after a failed accept before the next one.
const acceptBackoff = 10 * time.Millisecond

type Server struct {
	opts     ServerOpts
	listener net.Listener
	closed   atomic.Bool
	wg       sync.WaitGroup
}

// Shutdown the server. Waits for the connection being parsed, if any.
func (s *Server) Close() error {
	s.closed.Store(true)
	err := s.listener.Close()
	s.wg.Wait()
	return err
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

func (s *Server) listen() {
	defer s.wg.Done()

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if s.closed.Load() || errors.Is(err, net.ErrClosed) {
				return
			}
			// a failed accept only costs this connection
			log.Println("connection failed:", err)
			time.Sleep(acceptBackoff)
			continue
		}

		if s.opts.Concurrent {
			s.wg.Add(1)
			go func() {
				defer s.wg.Done()
				s.handle(conn)
			}()
			continue
		}
		s.handle(conn)
	}
}

func (s *Server) handle(conn net.Conn) {
	defer func() {
		if err := conn.Close(); err != nil {
			log.Println("unable to close connection", err)
		}
	}()

	defer func() {
		if r := recover(); r != nil {
			s.opts.Recovery(r)
		}
	}()

	req, err := request.FromConn(conn, s.opts.Parser)
	s.opts.Handler(conn.RemoteAddr(), req, err)
}

func newServer(opts ServerOpts) *Server {
	if opts.Recovery == nil {
		opts.Recovery = defaultRecovery
	}
	if opts.Handler == nil {
		opts.Handler = defaultHandler
	}
	if opts.Address == "" {
		opts.Address = defaultAddress
	}
	return &Server{
		opts: opts,
	}
}

// Serve binds the listening address and starts accepting connections in the
// background. A bind failure is returned directly.
func Serve(opts ServerOpts) (*Server, error) {
	s := newServer(opts)

	listener, err := net.Listen("tcp", s.opts.Address)
	if err != nil {
		return nil, err
	}
	s.listener = listener

	s.wg.Add(1)
	go s.listen()
	return s, nil
}
