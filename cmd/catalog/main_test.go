package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestNewRedisClient(t *testing.T) {
	tests := []struct {
		name string
		url  string
		addr string
		db   int
	}{
		{"URL", "redis://localhost:6380/2", "localhost:6380", 2},
		{"Bare address", "cache:6379", "cache:6379", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newRedisClient(tt.url)
			defer client.Close()

			opts := client.Options()
			if opts.Addr != tt.addr {
				t.Errorf("Expected addr '%s', got '%s'", tt.addr, opts.Addr)
			}
			if opts.DB != tt.db {
				t.Errorf("Expected db %d, got %d", tt.db, opts.DB)
			}
		})
	}
}

func TestRunExitPolicy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	tests := []struct {
		strict  string
		wantErr bool
	}{
		{"false", false},
		{"true", true},
	}

	for _, tt := range tests {
		t.Run("STRICT_EXIT="+tt.strict, func(t *testing.T) {
			dir := t.TempDir()
			catalogPath := filepath.Join(dir, "data.json")
			t.Setenv("PRICE_URL", srv.URL+"/price")
			t.Setenv("STOCK_URL", srv.URL+"/stock")
			t.Setenv("CATALOG_PATH", catalogPath)
			t.Setenv("SUMMARY_PATH", filepath.Join(dir, "update_stats.json"))
			t.Setenv("FETCH_TIMEOUT", "5s")
			t.Setenv("LOG_LEVEL", "panic")
			t.Setenv("STRICT_EXIT", tt.strict)
			t.Setenv("DATABASE_URL", "")
			t.Setenv("REDIS_URL", "")
			t.Setenv("METRICS_PORT", "")
			t.Setenv("METRICS_TEXTFILE", "")

			err := run()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
			}
			b, _ := os.ReadFile(catalogPath)
			if string(b) != "[]" {
				t.Errorf("Expected exactly [], got %q", b)
			}
		})
	}
}
