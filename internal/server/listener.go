package server

import (
	"fmt"
	"log"
	"net"
	"sync"

	"github.com/google/uuid"
)

// Config holds server configuration.
type Config struct {
	// QueueSize is the capacity of each middleware command/result
	// channel. At most one command is outstanding per connection, so
	// this is headroom, not throughput.
	QueueSize int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{QueueSize: 10}
}

// Server pairs incoming connections into matches and runs them.
type Server struct {
	config   Config
	registry *Registry
}

// New creates a server.
func New(config Config) *Server {
	return &Server{config: config, registry: NewRegistry()}
}

// Registry exposes the live-match registry.
func (s *Server) Registry() *Registry {
	return s.registry
}

// Listen accepts connections two at a time, pairs each two into a match
// and immediately resumes accepting. It only returns when accepting
// fails; a failed match is logged and the loop keeps serving.
func (s *Server) Listen(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	defer ln.Close()
	log.Printf("🎧 Listening on %s", ln.Addr())

	for {
		conn1, err := ln.Accept()
		if err != nil {
			return fmt.Errorf("accept: %w", err)
		}
		log.Printf("✅ player one connected: %s", conn1.RemoteAddr())

		conn2, err := ln.Accept()
		if err != nil {
			conn1.Close()
			return fmt.Errorf("accept: %w", err)
		}
		log.Printf("✅ player two connected: %s", conn2.RemoteAddr())

		go s.PlayMatch(conn1, conn2)
	}
}

// PlayMatch runs one match over a pair of connections, blocking until it
// ends. Connection teardown belongs to the middlewares.
func (s *Server) PlayMatch(conn1, conn2 net.Conn) {
	id := uuid.New().String()[:8] // Short ID
	s.registry.Add(id)
	defer s.registry.Remove(id)

	mw1 := NewMiddleware(conn1, s.config.QueueSize)
	mw2 := NewMiddleware(conn2, s.config.QueueSize)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); mw1.Run() }()
	go func() { defer wg.Done(); mw2.Run() }()

	log.Printf("🎮 [%s] match started (%d live)", id, s.registry.Count())
	err := NewInstance(mw1, mw2).Run()
	wg.Wait()

	if err != nil {
		log.Printf("❌ [%s] error finishing match: %v", id, err)
		return
	}
	log.Printf("🏁 [%s] successful match", id)
}
