// internal/demo/server.go
package demo

import (
	"net/http"

	"github.com/lesismal/nbio/nbhttp"
	"github.com/pkg/errors"
)

// Server serves a handler on nbio's HTTP engine.
type Server struct {
	engine *nbhttp.Engine
}

// NewServer prepares an engine listening on addr.
func NewServer(addr string, h http.Handler) *Server {
	engine := nbhttp.NewEngine(nbhttp.Config{
		Network: "tcp",
		Addrs:   []string{addr},
		MaxLoad: 100000,
		Handler: h,
	})
	return &Server{engine: engine}
}

// Start begins listening. It does not block.
func (s *Server) Start() error {
	if err := s.engine.Start(); err != nil {
		return errors.Wrap(err, "demo server start")
	}
	return nil
}

// Stop closes the listener and all connections.
func (s *Server) Stop() {
	s.engine.Stop()
}
