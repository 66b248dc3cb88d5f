package httpserver

import (
	"net"
	"time"
)

type Option func(*Server)

func Port(port string) Option {
	return func(s *Server) {
		s.address = net.JoinHostPort("", port)
	}
}

func Prefork(prefork bool) Option {
	return func(s *Server) {
		s.prefork = prefork
	}
}

func ReadTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.readTimeout = timeout
	}
}

func WriteTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.writeTimeout = timeout
	}
}

func ShutdownTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.shutdownTimeout = timeout
	}
}

// BodyLimit caps the request body in bytes. Multi-file uploads need it above the
// per-file limit.
func BodyLimit(limit int) Option {
	return func(s *Server) {
		s.bodyLimit = limit
	}
}

// LogRequests toggles the one-line access log written for every request.
func LogRequests(enabled bool) Option {
	return func(s *Server) {
		s.logRequests = enabled
	}
}
