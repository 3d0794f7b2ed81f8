package internal

import (
	"fmt"
	"time"
)

type Config struct {
	LogLevel          string        `env:"LOG_LEVEL,required=true"`
	Host              string        `env:"HOST,default=localhost"`
	Port              int           `env:"PORT,default=8080"`
	WebsocketPath     string        `env:"WEBSOCKET_PATH,default=/ws"`
	HealthPort        int           `env:"HEALTH_PORT,default=8081"`
	DebugPort         int           `env:"DEBUG_PORT,default=8082"`
	BadgerFilepath    string        `env:"BADGER_FILEPATH,required=true"`
	SessionBufferSize int           `env:"SESSION_BUFFER_SIZE,default=64"`
	DeliveryTimeout   time.Duration `env:"DELIVERY_TIMEOUT,default=500ms"`
	HealthInterval    time.Duration `env:"HEALTH_INTERVAL,default=10s"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	SeedFilepath      string        `env:"SEED_FILEPATH"`
}

func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c Config) HealthAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.HealthPort)
}

func (c Config) DebugAddress() string {
	return fmt.Sprintf("0.0.0.0:%d", c.DebugPort)
}

// Validate rejects values the environment parser accepts but the gateway cannot run with.
func (c Config) Validate() error {
	if c.SessionBufferSize <= 0 {
		return fmt.Errorf("SESSION_BUFFER_SIZE must be positive, got %d", c.SessionBufferSize)
	}
	if c.DeliveryTimeout <= 0 {
		return fmt.Errorf("DELIVERY_TIMEOUT must be positive, got %s", c.DeliveryTimeout)
	}
	if c.HealthInterval <= 0 {
		return fmt.Errorf("HEALTH_INTERVAL must be positive, got %s", c.HealthInterval)
	}
	if c.WebsocketPath == "" || c.WebsocketPath[0] != '/' {
		return fmt.Errorf("WEBSOCKET_PATH must start with '/', got %q", c.WebsocketPath)
	}
	return nil
}
