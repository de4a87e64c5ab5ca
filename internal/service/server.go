package service

import (
	"fmt"
	"log/slog"

	"github.com/Roma7-7-7/node-notifier/internal/host"
	"github.com/Roma7-7-7/node-notifier/internal/report"
)

//go:generate mockgen -package mocks -destination mocks/host.go . HostReader

type HostReader interface {
	Read() (host.Stats, error)
}

type Server struct {
	host HostReader

	log *slog.Logger
}

func NewServer(host HostReader, log *slog.Logger) *Server {
	return &Server{
		host: host,
		log:  log.With("component", "service").With("service", "server"),
	}
}

// Report renders the current disk, memory and load counters.
func (s *Server) Report() (string, error) {
	stats, err := s.host.Read()
	if err != nil {
		return "", fmt.Errorf("read host stats: %w", err)
	}

	s.log.Debug("host stats read", "diskFree", stats.DiskFree, "memFree", stats.MemFree)
	return report.Server(stats), nil
}
