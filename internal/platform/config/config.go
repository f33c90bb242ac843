package config

import (
	"os"
	"strings"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName   string
	HTTPPort      string
	PostgresDSN   string
	KafkaBrokers  []string
	InstanceOwner string
	InstanceToken string

	EnableRegistryOutboxRelay bool
	EnableLedgerOutboxRelay   bool
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "chainreputation"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	instanceToken := os.Getenv("INSTANCE_TOKEN")
	if instanceToken == "" {
		instanceToken = "REP"
	}

	var brokers []string
	for _, value := range strings.Split(os.Getenv("KAFKA_BROKERS"), ",") {
		value = strings.TrimSpace(value)
		if value != "" {
			brokers = append(brokers, value)
		}
	}
	if len(brokers) == 0 {
		brokers = []string{"localhost:9092"}
	}

	return Config{
		ServiceName:   service,
		HTTPPort:      port,
		PostgresDSN:   os.Getenv("POSTGRES_DSN"),
		KafkaBrokers:  brokers,
		InstanceOwner: strings.TrimSpace(os.Getenv("INSTANCE_OWNER")),
		InstanceToken: instanceToken,

		EnableRegistryOutboxRelay: envBool("ENABLE_REGISTRY_OUTBOX_RELAY", true),
		EnableLedgerOutboxRelay:   envBool("ENABLE_LEDGER_OUTBOX_RELAY", true),
	}, nil
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}
