package db

import (
	"testing"

	"github.com/dindin-invest/backend/config"
)

func TestNewConnection_SQLite(t *testing.T) {
	database, err := NewConnection(&config.DatabaseConfig{SQLitePath: "file::memory:"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer database.Close()

	if database.Driver() != "sqlite" {
		t.Errorf("expected sqlite driver, got %q", database.Driver())
	}
	if !database.HealthCheck() {
		t.Error("expected a healthy connection")
	}
}

func TestDialectorFor(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.DatabaseConfig
		want string
	}{
		{"postgres url", config.DatabaseConfig{URL: "postgres://u:p@localhost:5432/db"}, "postgres"},
		{"postgresql url", config.DatabaseConfig{URL: "postgresql://localhost/db"}, "postgres"},
		{"empty url", config.DatabaseConfig{SQLitePath: "dindin.db"}, "sqlite"},
		{"sqlite url", config.DatabaseConfig{URL: "sqlite://data.db"}, "sqlite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, got := dialectorFor(&tt.cfg); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
