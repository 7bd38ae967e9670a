package db

import (
	"context"
	"strings"
	"testing"
	"time"
)

// TestNew_PingError ensures that ping failures are propagated
// even when closing the connection succeeds.
func TestNew_PingError(t *testing.T) {
	cfg := MariaDbConfig{
		DSN:             "invalid:invalid@tcp(127.0.0.1:0)/dbname",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Second,
	}
	db, err := New(context.Background(), cfg)
	if err == nil {
		if db != nil {
			_ = db.Close()
		}
		t.Fatalf("expected error, got nil")
	}
}

func TestNew_InvalidDSN(t *testing.T) {
	_, err := New(context.Background(), MariaDbConfig{DSN: "no-slash-here"})
	if err == nil || !strings.Contains(err.Error(), "invalid MariaDB DSN") {
		t.Fatalf("expected invalid DSN error, got %v", err)
	}
}

func TestNormaliseDSN(t *testing.T) {
	got, err := normaliseDSN("user:pass@tcp(db:3306)/portfolio", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "parseTime=true") {
		t.Errorf("dsn %q lacks parseTime=true", got)
	}
	if strings.Contains(got, "multiStatements") {
		t.Errorf("dsn %q should not enable multiStatements", got)
	}

	got, err = normaliseDSN("user:pass@tcp(db:3306)/portfolio?charset=utf8mb4", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "multiStatements=true") || !strings.Contains(got, "charset=utf8mb4") {
		t.Errorf("dsn %q lost options", got)
	}
}
