package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// RECALL_HEALTH_ADDR is the gRPC health endpoint, e.g. localhost:8081
	HealthAddr string `envconfig:"RECALL_HEALTH_ADDR"`
	// RECALL_WS_URL is the websocket gateway, e.g. ws://localhost:8080/ws
	WebsocketURL string `envconfig:"RECALL_WS_URL"`
	// E2E_DEBUG_JSON allows dumping full gRPC request/response bodies as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
