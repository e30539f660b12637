package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.HTTPAddress != ":8080" {
		t.Fatalf("unexpected http address %q", cfg.HTTPAddress)
	}
	if cfg.StoreDriver != "sqlite" {
		t.Fatalf("unexpected store driver %q", cfg.StoreDriver)
	}
	if cfg.SessionTopic != "session_events" {
		t.Fatalf("unexpected session topic %q", cfg.SessionTopic)
	}
	if len(cfg.KafkaBrokers) != 0 {
		t.Fatalf("expected event publishing disabled by default, got %v", cfg.KafkaBrokers)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")

	cfg := Load()

	if cfg.StoreDriver != "postgres" {
		t.Fatalf("unexpected store driver %q", cfg.StoreDriver)
	}
	if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[1] != "kafka-2:9092" {
		t.Fatalf("unexpected brokers %v", cfg.KafkaBrokers)
	}
}
