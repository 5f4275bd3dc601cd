package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("MongoURI = %q", cfg.MongoURI)
	}
	if cfg.RabbitMQExchange != "employee_events" {
		t.Errorf("RabbitMQExchange = %q", cfg.RabbitMQExchange)
	}
	if cfg.AccessTTL != time.Hour {
		t.Errorf("AccessTTL = %v, want 1h", cfg.AccessTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MONGO_DATABASE", "hr")
	t.Setenv("DEPARTMENT_SERVICE_TIMEOUT", "2s")
	t.Setenv("MAIL_SEND_ENABLED", "false")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.MongoDatabase != "hr" {
		t.Errorf("MongoDatabase = %q, want hr", cfg.MongoDatabase)
	}
	if cfg.DepartmentServiceTimeout != 2*time.Second {
		t.Errorf("DepartmentServiceTimeout = %v, want 2s", cfg.DepartmentServiceTimeout)
	}
	if cfg.MailSendEnabled {
		t.Errorf("MailSendEnabled = true, want false")
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("JWT_ACCESS_TTL", "soon")
	t.Setenv("MONGO_MAX_POOL", "lots")

	cfg := Load()
	if cfg.AccessTTL != time.Hour {
		t.Errorf("AccessTTL = %v, want default 1h", cfg.AccessTTL)
	}
	if cfg.MongoMaxPool != 20 {
		t.Errorf("MongoMaxPool = %d, want default 20", cfg.MongoMaxPool)
	}
}

func TestCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com ,")

	cfg := Load()
	got := cfg.CORSOrigins()
	if len(got) != 2 || got[0] != "https://a.example.com" || got[1] != "https://b.example.com" {
		t.Errorf("CORSOrigins() = %v", got)
	}
}
