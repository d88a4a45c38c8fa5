package server

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"
)

func TestRun_FailsFastWhenPortOccupied(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to occupy a port: %v", err)
	}
	defer ln.Close()
	port := ln.Addr().(*net.TCPAddr).Port

	t.Setenv("UNICHAT_DATABASE_DRIVER", "sqlite")
	t.Setenv("UNICHAT_DATABASE_DSN", filepath.Join(t.TempDir(), "test.db"))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = Run(ctx, Config{Port: port})
	if err == nil {
		t.Fatal("expected error when the port is already in use")
	}
	if ctx.Err() != nil {
		t.Fatal("Run blocked until the context deadline instead of failing fast")
	}
}
