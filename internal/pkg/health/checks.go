package health

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/piresc/shesafe/internal/pkg/database"
	"github.com/piresc/shesafe/internal/pkg/logger"
	"github.com/piresc/shesafe/internal/pkg/nats"
)

// HealthChecker checks one dependency
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a function to HealthChecker
type CheckerFunc func(ctx context.Context) error

// CheckHealth calls f(ctx)
func (f CheckerFunc) CheckHealth(ctx context.Context) error { return f(ctx) }

// NewRedisChecker pings Redis
func NewRedisChecker(client *database.RedisClient) HealthChecker {
	return CheckerFunc(func(ctx context.Context) error {
		return client.Ping(ctx)
	})
}

// NewPostgresChecker pings PostgreSQL
func NewPostgresChecker(client *database.PostgresClient) HealthChecker {
	return CheckerFunc(func(ctx context.Context) error {
		return client.Ping(ctx)
	})
}

// NewNATSChecker verifies the connection and that JetStream answers
func NewNATSChecker(client *nats.Client) HealthChecker {
	return CheckerFunc(func(ctx context.Context) error {
		if !client.IsConnected() {
			return errors.New("NATS not connected")
		}
		if _, err := client.JetStream().AccountInfo(ctx); err != nil {
			return fmt.Errorf("JetStream not available: %w", err)
		}
		return nil
	})
}

// Service runs every registered checker
type Service struct {
	checkers map[string]HealthChecker
}

// NewService creates an empty health service
func NewService() *Service {
	return &Service{checkers: make(map[string]HealthChecker)}
}

// AddChecker registers a health checker for a dependency
func (s *Service) AddChecker(name string, checker HealthChecker) {
	s.checkers[name] = checker
}

// Response is the detailed health report
type Response struct {
	Status       string                    `json:"status"`
	Timestamp    time.Time                 `json:"timestamp"`
	Service      string                    `json:"service"`
	Version      string                    `json:"version,omitempty"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

// DependencyInfo represents health info for a dependency
type DependencyInfo struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// CheckAll runs the checkers in name order
func (s *Service) CheckAll(ctx context.Context) Response {
	response := Response{
		Status:       "healthy",
		Timestamp:    time.Now(),
		Dependencies: make(map[string]DependencyInfo, len(s.checkers)),
	}

	names := make([]string, 0, len(s.checkers))
	for name := range s.checkers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := s.checkers[name].CheckHealth(ctx); err != nil {
			logger.Error("Health check failed",
				logger.String("dependency", name),
				logger.Err(err))
			response.Dependencies[name] = DependencyInfo{Status: "unhealthy", Error: err.Error()}
			response.Status = "unhealthy"
			continue
		}
		response.Dependencies[name] = DependencyInfo{Status: "healthy"}
	}

	return response
}
